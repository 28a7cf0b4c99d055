package ports

import (
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/sitrep"
)

// WorkbookSource provides access to SitRep workbooks. NHS England offers no
// programmatic API; files are downloaded manually and discovered on disk.
type WorkbookSource interface {
	// Discover returns the path of the first workbook found under dir.
	// Additional files are deliberately ignored, not merged.
	Discover(dir string) (string, error)

	// LoadGrid reads one named sheet into a typed cell grid
	LoadGrid(path, sheetName string) (sitrep.Grid, error)
}
