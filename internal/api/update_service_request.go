package api

// UpdateServiceRequest 更新服務的表單欄位，全部可省略
// 省略的欄位保留原值；name 有給才會重算 slug
// swagger:model api.UpdateServiceRequest
type UpdateServiceRequest struct {
	Name            *string `json:"name" form:"name"`
	Description     *string `json:"description" form:"description"`
	LongDescription *string `json:"long_description" form:"long_description"`
	Status          *string `json:"status" form:"status"`
	Category        *string `json:"category" form:"category"`
	Icon            *string `json:"icon" form:"icon"`
}

// swagger:model api.UpdateServiceResponse
type UpdateServiceResponse struct {
	Message  string  `json:"message" example:"service updated successfully"`
	Slug     string  `json:"slug" example:"web-design"`
	ImageURL *string `json:"image_url"`
}
