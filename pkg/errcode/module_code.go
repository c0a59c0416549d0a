package errcode

var (
	CreatePostFailed = NewError(30002, "Create Post Failed")
	GetPostFailed    = NewError(30003, "Get Post Failed")
	DeletePostFailed = NewError(30004, "Delete Post Failed")
	NoExistPost      = NewError(30005, "Post Not Found")
	GetPostsFailed   = NewError(30006, "Get Posts Failed")
	LikePostFailed   = NewError(30007, "Like Post Failed")
	SharePostFailed  = NewError(30008, "Share Post Failed")
	GetTagsFailed    = NewError(30009, "Get Post Tags Failed")
	SearchFailed     = NewError(30010, "Search Posts Failed")

	CreateCommentFailed = NewError(40002, "Create Comment Failed")

	InsufficientDonation = NewError(50001, "Please donate a minimum of ₹100 to get verified")
	VerifyUserFailed     = NewError(50002, "Verify User Failed")

	UploadFailed     = NewError(60001, "Upload Failed, Please try again")
	InvalidMediaType = NewError(60002, "Only image or video files can be uploaded")
	FileTooLarge     = NewError(60003, "File Too Large")

	FormatTextFailed = NewError(70001, "Format Text Failed")
)
