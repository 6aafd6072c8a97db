package sheets

import "umc/internal/models"

// carryOver starts a breakdown row with the owning record's identity.
func carryOver(rec models.Record) models.Row {
	return models.Row{
		colUserLogin: rec.Str(fieldUserLogin),
		colDay:       rec.Str(fieldDay),
	}
}

// putActivity copies the six activity columns every breakdown shares.
func putActivity(row models.Row, entry models.Record) {
	row[colGenerations] = entry.Int(fieldGenerations)
	row[colAcceptances] = entry.Int(fieldAcceptances)
	row[colLOCSuggAdd] = entry.Int(fieldLOCSuggAdd)
	row[colLOCSuggDel] = entry.Int(fieldLOCSuggDel)
	row[colLOCAdded] = entry.Int(fieldLOCAdded)
	row[colLOCDeleted] = entry.Int(fieldLOCDeleted)
}

// BuildMainMetrics emits one row per record with the day-level scalars.
// Breakdown lists are ignored here, so a record whose activity happened in
// a single IDE can still show zero day-level LOC.
func BuildMainMetrics(records []models.Record) *models.Table {
	table := models.NewTable(SheetMainMetrics, mainMetricsColumns)
	for _, rec := range records {
		row := models.Row{
			colReportStart:  rec.Str(fieldReportStart),
			colReportEnd:    rec.Str(fieldReportEnd),
			colDay:          rec.Str(fieldDay),
			colEnterpriseID: rec.Str(fieldEnterpriseID),
			colUserID:       rec.Str(fieldUserID),
			colUserLogin:    rec.Str(fieldUserLogin),
			colInteractions: rec.Int(fieldInteractions),
			colUsedAgent:    rec.Bool(fieldUsedAgent),
			colUsedChat:     rec.Bool(fieldUsedChat),
		}
		putActivity(row, rec)
		table.Append(row)
	}
	return table
}

// BuildIDETotals emits one row per totals_by_ide entry. Plugin and IDE
// versions live one object deeper and default to empty strings.
func BuildIDETotals(records []models.Record) *models.Table {
	table := models.NewTable(SheetIDETotals, ideTotalsColumns)
	for _, rec := range records {
		for _, entry := range rec.List(fieldTotalsByIDE) {
			row := carryOver(rec)
			row[colIDE] = entry.Str(fieldIDE)
			row[colInteractions] = entry.Int(fieldInteractions)
			putActivity(row, entry)
			row[colPluginVersion] = entry.Sub(fieldLastPluginVersion).Str(fieldPluginVersion)
			row[colIDEVersion] = entry.Sub(fieldLastIDEVersion).Str(fieldIDEVersion)
			table.Append(row)
		}
	}
	return table
}

func BuildFeatureTotals(records []models.Record) *models.Table {
	table := models.NewTable(SheetFeatureTotals, featureTotalsColumns)
	for _, rec := range records {
		for _, entry := range rec.List(fieldTotalsByFeature) {
			row := carryOver(rec)
			row[colFeature] = entry.Str(fieldFeature)
			row[colInteractions] = entry.Int(fieldInteractions)
			putActivity(row, entry)
			table.Append(row)
		}
	}
	return table
}

// BuildLanguageFeature has no interactions column: the source never totals
// interactions per language.
func BuildLanguageFeature(records []models.Record) *models.Table {
	table := models.NewTable(SheetLanguageFeature, languageFeatureColumns)
	for _, rec := range records {
		for _, entry := range rec.List(fieldTotalsByLanguageFeature) {
			row := carryOver(rec)
			row[colLanguage] = entry.Str(fieldLanguage)
			row[colFeature] = entry.Str(fieldFeature)
			putActivity(row, entry)
			table.Append(row)
		}
	}
	return table
}

func BuildLanguageModel(records []models.Record) *models.Table {
	table := models.NewTable(SheetLanguageModel, languageModelColumns)
	for _, rec := range records {
		for _, entry := range rec.List(fieldTotalsByLanguageModel) {
			row := carryOver(rec)
			row[colLanguage] = entry.Str(fieldLanguage)
			row[colModel] = entry.Str(fieldModel)
			putActivity(row, entry)
			table.Append(row)
		}
	}
	return table
}

func BuildModelFeature(records []models.Record) *models.Table {
	table := models.NewTable(SheetModelFeature, modelFeatureColumns)
	for _, rec := range records {
		for _, entry := range rec.List(fieldTotalsByModelFeature) {
			row := carryOver(rec)
			row[colModel] = entry.Str(fieldModel)
			row[colFeature] = entry.Str(fieldFeature)
			row[colInteractions] = entry.Int(fieldInteractions)
			putActivity(row, entry)
			table.Append(row)
		}
	}
	return table
}
