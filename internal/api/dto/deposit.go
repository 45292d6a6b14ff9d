package dto

// ListDepositsQuery 存款列表透传查询参数
type ListDepositsQuery struct {
	Page           int    `form:"page,default=1" binding:"min=1"`
	PageSize       int    `form:"pageSize,default=25" binding:"min=1"`
	IsInfluencer   bool   `form:"isInfluencer"`
	StartDate      string `form:"startDate"`
	EndDate        string `form:"endDate"`
	OrderBy        string `form:"orderBy,default=amount"`
	OrderDirection string `form:"orderDirection,default=DESC"`
	Status         string `form:"status,default=APPROVED"`
	Search         string `form:"search"`
}
