package resp

const (
	CodeBadRequest    = "bad_request"
	CodeNotFound      = "not_found"
	CodeInternalError = "internal_error"
	CodeBadGateway    = "bad_gateway"
	CodeQueued        = "queued"
)
