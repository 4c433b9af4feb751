package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"secretary-api/core/constants"
	"secretary-api/core/errors"
	"secretary-api/core/googleauth"
	"secretary-api/core/logger"
)

const googleSheetsAPIBase = "https://sheets.googleapis.com/v4"

// SheetsAPI is the boundary to the external spreadsheet service
type SheetsAPI interface {
	// AppendRow appends one row of values to the named sheet.
	AppendRow(ctx context.Context, spreadsheetID, sheetName string, values []any) *errors.AppError
}

type googleSheetsAPI struct {
	baseURL string
	client  *http.Client
	tokenFn func(ctx context.Context) (string, *errors.AppError)
}

func NewGoogleSheetsAPI() SheetsAPI {
	return &googleSheetsAPI{
		baseURL: googleSheetsAPIBase,
		client:  &http.Client{Timeout: constants.DefaultTimeout},
		tokenFn: googleauth.AccessToken,
	}
}

// AppendRow calls spreadsheets.values.append
func (g *googleSheetsAPI) AppendRow(ctx context.Context, spreadsheetID, sheetName string, values []any) *errors.AppError {
	accessToken, appErr := g.tokenFn(ctx)
	if appErr != nil {
		return appErr
	}

	payload := map[string]any{
		"values": [][]any{values},
	}
	payloadJSON, _ := json.Marshal(payload)

	apiURL := fmt.Sprintf("%s/spreadsheets/%s/values/%s:append?valueInputOption=USER_ENTERED&insertDataOption=INSERT_ROWS",
		g.baseURL, spreadsheetID, url.PathEscape(sheetName))

	req, err := http.NewRequestWithContext(ctx, "POST", apiURL, bytes.NewReader(payloadJSON))
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to create request", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		logger.Error("GoogleSheetsAPI:AppendRow:DoRequest:Error", "error", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to append row", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		logger.Error("GoogleSheetsAPI:AppendRow:APIError", "status", resp.StatusCode, "body", string(body))
		if resp.StatusCode == http.StatusNotFound {
			return errors.NewAppError(errors.ErrNotFound,
				"spreadsheet not found; check the spreadsheet ID and sharing settings", nil)
		}
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return errors.NewAppError(errors.ErrForbidden,
				fmt.Sprintf("Google Sheets API access denied: %d", resp.StatusCode), nil)
		}
		return errors.NewAppError(errors.ErrInternalServer,
			fmt.Sprintf("Google Sheets API error: %d", resp.StatusCode), nil)
	}

	return nil
}
