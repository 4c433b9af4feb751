package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secretary-api/core/config"
	"secretary-api/core/constants"
	"secretary-api/core/errors"
	"secretary-api/modules/request/entity"
)

type fakeSheetsAPI struct {
	appendErr *errors.AppError

	spreadsheetIDs []string
	sheetNames     []string
	rows           [][]any
}

func (f *fakeSheetsAPI) AppendRow(ctx context.Context, spreadsheetID, sheetName string, values []any) *errors.AppError {
	f.spreadsheetIDs = append(f.spreadsheetIDs, spreadsheetID)
	f.sheetNames = append(f.sheetNames, sheetName)
	f.rows = append(f.rows, values)
	return f.appendErr
}

func loadTestConfig(t *testing.T) {
	t.Helper()
	t.Setenv("SECRETARY_GOOGLE_SPREADSHEET_ID", "sheet-123")
	require.NoError(t, config.Load())
}

func TestSubmit_AppendsRowInOrder(t *testing.T) {
	loadTestConfig(t)
	sheets := &fakeSheetsAPI{}
	svc := NewRequestService(sheets)

	req := &entity.MeetingRequest{
		Email:       "ziad@example.com",
		Topic:       "Budget review",
		Description: "Q3 numbers",
		Priority:    42,
	}
	resp, appErr := svc.Submit(context.Background(), req)

	require.Nil(t, appErr)
	require.NotNil(t, resp)
	assert.False(t, resp.SubmittedAt.IsZero())

	require.Len(t, sheets.rows, 1)
	assert.Equal(t, "sheet-123", sheets.spreadsheetIDs[0])
	assert.Equal(t, "Meeting Requests", sheets.sheetNames[0])

	row := sheets.rows[0]
	require.Len(t, row, 5)
	timestamp, ok := row[0].(string)
	require.True(t, ok)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`, timestamp)
	assert.Equal(t, "ziad@example.com", row[1])
	assert.Equal(t, "Budget review", row[2])
	assert.Equal(t, "Q3 numbers", row[3])
	assert.Equal(t, 42, row[4])
}

func TestSubmit_ValidatesBeforeExternalCall(t *testing.T) {
	loadTestConfig(t)
	sheets := &fakeSheetsAPI{}
	svc := NewRequestService(sheets)

	cases := []struct {
		name string
		req  entity.MeetingRequest
	}{
		{"missing email", entity.MeetingRequest{Topic: "Budget", Priority: 5}},
		{"missing topic", entity.MeetingRequest{Email: "ziad@example.com", Priority: 5}},
		{"bad email", entity.MeetingRequest{Email: "not-an-email", Topic: "Budget", Priority: 5}},
		{"priority too low", entity.MeetingRequest{Email: "ziad@example.com", Topic: "Budget", Priority: constants.PriorityMin - 1}},
		{"priority too high", entity.MeetingRequest{Email: "ziad@example.com", Topic: "Budget", Priority: constants.PriorityMax + 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := tc.req
			resp, appErr := svc.Submit(context.Background(), &req)
			assert.Nil(t, resp)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
		})
	}

	assert.Empty(t, sheets.rows, "invalid requests must never reach the spreadsheet")
}

func TestSubmit_MissingSpreadsheetID(t *testing.T) {
	t.Setenv("SECRETARY_GOOGLE_SPREADSHEET_ID", "")
	require.NoError(t, config.Load())
	sheets := &fakeSheetsAPI{}
	svc := NewRequestService(sheets)

	req := &entity.MeetingRequest{Email: "ziad@example.com", Topic: "Budget", Priority: 5}
	resp, appErr := svc.Submit(context.Background(), req)

	assert.Nil(t, resp)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrConfiguration, appErr.Code)
	assert.Empty(t, sheets.rows)
}

func TestSubmit_SheetErrorPropagates(t *testing.T) {
	loadTestConfig(t)
	sheets := &fakeSheetsAPI{
		appendErr: errors.NewAppError(errors.ErrNotFound,
			"spreadsheet not found; check the spreadsheet ID and sharing settings", nil),
	}
	svc := NewRequestService(sheets)

	req := &entity.MeetingRequest{Email: "ziad@example.com", Topic: "Budget", Priority: 5}
	resp, appErr := svc.Submit(context.Background(), req)

	assert.Nil(t, resp)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}
