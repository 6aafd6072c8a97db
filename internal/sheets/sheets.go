package sheets

import "umc/internal/models"

// Workbook tab names, in output order.
const (
	SheetMainMetrics     = "Main_Metrics"
	SheetIDETotals       = "IDE_Totals"
	SheetFeatureTotals   = "Feature_Totals"
	SheetLanguageFeature = "Language_Feature"
	SheetLanguageModel   = "Language_Model"
	SheetModelFeature    = "Model_Feature"
)

// Input record fields.
const (
	fieldReportStart  = "report_start_day"
	fieldReportEnd    = "report_end_day"
	fieldDay          = "day"
	fieldEnterpriseID = "enterprise_id"
	fieldUserID       = "user_id"
	fieldUserLogin    = "user_login"
	fieldInteractions = "user_initiated_interaction_count"
	fieldGenerations  = "code_generation_activity_count"
	fieldAcceptances  = "code_acceptance_activity_count"
	fieldLOCSuggAdd   = "loc_suggested_to_add_sum"
	fieldLOCSuggDel   = "loc_suggested_to_delete_sum"
	fieldLOCAdded     = "loc_added_sum"
	fieldLOCDeleted   = "loc_deleted_sum"
	fieldUsedAgent    = "used_agent"
	fieldUsedChat     = "used_chat"

	fieldTotalsByIDE             = "totals_by_ide"
	fieldTotalsByFeature         = "totals_by_feature"
	fieldTotalsByLanguageFeature = "totals_by_language_feature"
	fieldTotalsByLanguageModel   = "totals_by_language_model"
	fieldTotalsByModelFeature    = "totals_by_model_feature"

	fieldIDE      = "ide"
	fieldFeature  = "feature"
	fieldLanguage = "language"
	fieldModel    = "model"

	fieldLastPluginVersion = "last_known_plugin_version"
	fieldPluginVersion     = "plugin_version"
	fieldLastIDEVersion    = "last_known_ide_version"
	fieldIDEVersion        = "ide_version"
)

// Column headers.
const (
	colReportStart   = "Report Start"
	colReportEnd     = "Report End"
	colDay           = "Day"
	colEnterpriseID  = "Enterprise ID"
	colUserID        = "User ID"
	colUserLogin     = "User Login"
	colInteractions  = "User Initiated Interactions"
	colGenerations   = "Code Generation Activity"
	colAcceptances   = "Code Acceptance Activity"
	colLOCSuggAdd    = "LOC Suggested to Add"
	colLOCSuggDel    = "LOC Suggested to Delete"
	colLOCAdded      = "LOC Added"
	colLOCDeleted    = "LOC Deleted"
	colUsedAgent     = "Used Agent"
	colUsedChat      = "Used Chat"
	colIDE           = "IDE"
	colFeature       = "Feature"
	colLanguage      = "Language"
	colModel         = "Model"
	colPluginVersion = "Plugin Version"
	colIDEVersion    = "IDE Version"
)

var (
	mainMetricsColumns = []string{
		colReportStart, colReportEnd, colDay, colEnterpriseID, colUserID, colUserLogin,
		colInteractions, colGenerations, colAcceptances,
		colLOCSuggAdd, colLOCSuggDel, colLOCAdded, colLOCDeleted,
		colUsedAgent, colUsedChat,
	}
	ideTotalsColumns = []string{
		colUserLogin, colDay, colIDE,
		colInteractions, colGenerations, colAcceptances,
		colLOCSuggAdd, colLOCSuggDel, colLOCAdded, colLOCDeleted,
		colPluginVersion, colIDEVersion,
	}
	featureTotalsColumns = []string{
		colUserLogin, colDay, colFeature,
		colInteractions, colGenerations, colAcceptances,
		colLOCSuggAdd, colLOCSuggDel, colLOCAdded, colLOCDeleted,
	}
	languageFeatureColumns = []string{
		colUserLogin, colDay, colLanguage, colFeature,
		colGenerations, colAcceptances,
		colLOCSuggAdd, colLOCSuggDel, colLOCAdded, colLOCDeleted,
	}
	languageModelColumns = []string{
		colUserLogin, colDay, colLanguage, colModel,
		colGenerations, colAcceptances,
		colLOCSuggAdd, colLOCSuggDel, colLOCAdded, colLOCDeleted,
	}
	modelFeatureColumns = []string{
		colUserLogin, colDay, colModel, colFeature,
		colInteractions, colGenerations, colAcceptances,
		colLOCSuggAdd, colLOCSuggDel, colLOCAdded, colLOCDeleted,
	}
)

// BuildAll produces the six workbook tabs in their fixed order. Tabs for
// breakdowns no record carries come back empty and are skipped by the
// writer.
func BuildAll(records []models.Record) []*models.Table {
	return []*models.Table{
		BuildMainMetrics(records),
		BuildIDETotals(records),
		BuildFeatureTotals(records),
		BuildLanguageFeature(records),
		BuildLanguageModel(records),
		BuildModelFeature(records),
	}
}
