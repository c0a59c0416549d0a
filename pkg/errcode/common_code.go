package errcode

var (
	Success         = NewError(0, "Success")
	ServerError     = NewError(10000, "Server Error")
	InvalidParams   = NewError(10001, "Invalid Params")
	NotFound        = NewError(10002, "Not Found")
	NoPermission    = NewError(10003, "No Permission")
	TooManyRequests = NewError(10008, "Too Many Requests")
)
