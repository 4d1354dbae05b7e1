package apierrors

const (
	MsgInvalidFilter         = "invalidFilter"
	MsgFailFilterProjects    = "failFilterProjects"
	MsgInvalidProjectID      = "invalidProjectID"
	MsgProjectNotFound       = "projectNotFound"
	MsgFailGetProject        = "failGetProject"
	MsgInvalidProjectPayload = "invalidProjectPayload"
	MsgClientIDRequired      = "clientIDRequired"
	MsgClientNotFound        = "clientNotFound"
	MsgNoFileUploaded        = "noFileUploaded"
	MsgInvalidFileType       = "invalidFileType"
	MsgFileTooLarge          = "fileTooLarge"
	MsgFailCreateProject     = "failCreateProject"
	MsgFailUpdateProject     = "failUpdateProject"
	MsgFailDeleteProject     = "failDeleteProject"
	MsgFailListClients       = "failListClients"
	MsgInvalidClientPayload  = "invalidClientPayload"
	MsgFailCreateClient      = "failCreateClient"
)
