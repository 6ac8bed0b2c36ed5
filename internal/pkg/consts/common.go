package consts

const (
	MimeJPEG = "image/jpeg"
	MimePNG  = "image/png"
)

const (
	UploadCategoryPayment    = "payments"
	UploadCategoryAiOverview = "ai-overview"
)

const (
	MaxAiOverviewImages = 3
)
