package printing

type PrintRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,min=8,max=20"`
	EventCode   string `json:"event_code" validate:"required,min=4,max=32"`
	ImageName   string `json:"image_name" validate:"required"`
}

type PrintResponse struct {
	Message      string `json:"message"`
	PresignedURL string `json:"presigned_url"`
}
