package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	ErrorCodeFailed         = 1
	InternalServerErrorCode = 500
	TooManyRequestsCode     = 429
)
