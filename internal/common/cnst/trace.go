package cnst

// Tracer and span names
const (
	TraceAPIServer = "luhambo/apiserver"

	AttrStudentID = "luhambo.student_id"
	AttrReportID  = "luhambo.report_id"
)
