package api

// CreateServiceRequest 建立服務的表單欄位；圖片檔另以 multipart 欄位 image 附加
// swagger:model api.CreateServiceRequest
type CreateServiceRequest struct {
	Name            string `json:"name" form:"name" validate:"required" example:"Web Design"`
	Description     string `json:"description" form:"description" validate:"required" example:"Responsive website design"`
	LongDescription string `json:"long_description" form:"long_description" example:""`
	Status          string `json:"status" form:"status" validate:"required" example:"active"`
	Category        string `json:"category" form:"category" validate:"required" example:"design"`
	Icon            string `json:"icon" form:"icon" example:"palette"`
}

// swagger:model api.CreateServiceResponse
type CreateServiceResponse struct {
	Message   string  `json:"message" example:"service created successfully"`
	ServiceID int     `json:"serviceId" example:"1"`
	Slug      string  `json:"slug" example:"web-design"`
	ImageURL  *string `json:"image_url"`
}
