package sheets

import (
	"context"
	"strings"
)

// MockSheetsAPI implements SheetsAPI for testing
type MockSheetsAPI struct {
	data          map[string][][]interface{} // Store sheet data by tab name
	readErrors    []error                    // Returned by successive ReadSheet calls before data
	existsError   error
	readCalls     int
	lastReadRange string
}

func NewMockSheetsAPI() *MockSheetsAPI {
	return &MockSheetsAPI{
		data: make(map[string][][]interface{}),
	}
}

func (m *MockSheetsAPI) ReadSheet(ctx context.Context, spreadsheetID, range_ string) ([][]interface{}, error) {
	m.readCalls++
	m.lastReadRange = range_

	if len(m.readErrors) > 0 {
		err := m.readErrors[0]
		m.readErrors = m.readErrors[1:]
		return nil, err
	}

	if data, exists := m.data[sheetNameFromRange(range_)]; exists {
		return data, nil
	}
	return [][]interface{}{}, nil
}

func (m *MockSheetsAPI) SheetExists(ctx context.Context, spreadsheetID, sheetName string) (bool, error) {
	if m.existsError != nil {
		return false, m.existsError
	}
	_, exists := m.data[strings.TrimSpace(sheetName)]
	return exists, nil
}

func (m *MockSheetsAPI) SetSheetData(sheetName string, data [][]interface{}) {
	m.data[sheetName] = data
}
