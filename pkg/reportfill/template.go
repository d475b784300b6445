package reportfill

import (
	"errors"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// openTemplate opens the template workbook and resolves the sheet to use.
// The caller must close the returned file.
func openTemplate(path, sheet string) (*excelize.File, string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("%w at %s", ErrTemplateNotFound, path)
		}
		return nil, "", err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("open template: %w", err)
	}

	name, err := resolveSheet(f, sheet)
	if err != nil {
		f.Close()
		return nil, "", err
	}
	return f, name, nil
}

// resolveSheet returns sheet if the workbook has it, else the active sheet.
func resolveSheet(f *excelize.File, sheet string) (string, error) {
	if sheet != "" {
		if idx, err := f.GetSheetIndex(sheet); err == nil && idx >= 0 {
			return sheet, nil
		}
	}
	if name := f.GetSheetName(f.GetActiveSheetIndex()); name != "" {
		return name, nil
	}
	if list := f.GetSheetList(); len(list) > 0 {
		return list[0], nil
	}
	return "", ErrSheetNotFound
}
