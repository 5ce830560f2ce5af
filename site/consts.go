package site

const (
	ServiceName = "portfolio"

	ReadingFilterParam = "filter"
	SearchParam        = "q"
	CategoryParam      = "category"

	// Essays render at this reading speed when no read time is given.
	WordsPerMinute = 200
)
