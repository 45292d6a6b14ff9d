package dto

// BalanceQuery 用户余额列表查询参数
// orderBy 兼容前端表格使用的 user.balance 列名
type BalanceQuery struct {
	Page           int    `form:"page,default=1" binding:"min=1"`
	PageSize       int    `form:"pageSize,default=25" binding:"min=1"`
	OrderBy        string `form:"orderBy,default=user.balance" binding:"omitempty,oneof=balance user.balance name lastLoginAt"`
	OrderDirection string `form:"orderDirection,default=DESC"`
	Search         string `form:"search"`
}

// UserBalanceDTO 按用户归并后的余额视图
// user.balance 为第一次观察到的 REAL 钱包余额，可能为 null
type UserBalanceDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Nickname    string   `json:"nickname"`
	Phone       string   `json:"phone"`
	Country     string   `json:"country"`
	LastLoginAt string   `json:"lastLoginAt"`
	Balance     *float64 `json:"user.balance"`
}

// BalancePageDTO 余额列表的分页返回包装
type BalancePageDTO struct {
	Data        []*UserBalanceDTO `json:"data"`
	CurrentPage int               `json:"currentPage"`
	LastPage    int               `json:"lastPage"`
	Count       int               `json:"count"`
}
