package model

// DepositRecord 上游存款接口返回的单条充值记录
// json tag 与上游字段一一对应，透传接口原样回给前端
type DepositRecord struct {
	ID         string   `json:"id"`
	Amount     float64  `json:"amount"`
	Status     string   `json:"status"`
	Method     string   `json:"method,omitempty"`
	Provider   string   `json:"provider,omitempty"`
	CreatedAt  string   `json:"createdAt,omitempty"`
	ApprovedAt string   `json:"approvedAt,omitempty"`
	User       *UserRef `json:"user,omitempty"`
}

// UserRef 充值记录内嵌的用户信息快照
type UserRef struct {
	ID          string   `json:"id"`
	Name        string   `json:"name,omitempty"`
	Email       string   `json:"email,omitempty"`
	Nickname    string   `json:"nickname,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Country     string   `json:"country,omitempty"`
	LastLoginAt string   `json:"lastLoginAt,omitempty"`
	Wallets     []Wallet `json:"wallets,omitempty"`
}

// Wallet 用户钱包，余额统计只关心 type 为 REAL 的钱包
type Wallet struct {
	Type    string   `json:"type"`
	Balance *float64 `json:"balance"`
}

// RealBalance 返回第一个 REAL 钱包的余额，不存在时为 nil
func (u *UserRef) RealBalance() *float64 {
	for _, w := range u.Wallets {
		if w.Type == WalletTypeReal {
			return w.Balance
		}
	}
	return nil
}

const WalletTypeReal = "REAL"
