package constant

const (
	LogActionCreateProject = 1 + iota
	LogActionUpdateProject
	LogActionDeleteProject
)
const (
	LogActionCreateActivity = 11 + iota
	LogActionUpdateActivity
	LogActionDeleteActivity
)
const (
	LogActionCreateRft = 21 + iota
	LogActionUpdateRft
	LogActionDeleteRft
	LogActionIssueRft
	LogActionCreateAddendum
	LogActionUpdateAddendum
	LogActionDeleteAddendum
)
const (
	LogActionExportReport = 31 + iota
	LogActionExportProgram
	LogActionExportTransmittal
	LogActionBatchExport
	LogActionIssueTransmittal
)
const (
	LogActionCreateDict = 41 + iota
	LogActionUpdateDict
	LogActionDeleteDict
)
