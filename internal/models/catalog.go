package models

// CatalogItem is one nomenclature entry: a known category/name pair used to
// drive autocompletion in the add form. Items are created only by spreadsheet
// import; SourceFile and ImportDate record which upload produced the item so
// whole batches can be reviewed and deleted together.
type CatalogItem struct {
	ID         string `json:"id"`
	Category   string `json:"category"`
	Name       string `json:"name"`
	SourceFile string `json:"sourceFile,omitempty"`
	ImportDate string `json:"importDate,omitempty"`
}

// FileGroup is a read-only aggregation of catalog items by the spreadsheet
// they were imported from.
type FileGroup struct {
	FileName         string
	Count            int
	LatestImportDate string
}
