package echo

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/user-registry/internal/application/user"
	domain "github.com/mohammadpnp/user-registry/internal/domain/user"
	"github.com/mohammadpnp/user-registry/internal/logging"
	"github.com/sirupsen/logrus"
)

const importFormField = "file"

type ImportHandler struct {
	importUsers app.ImportUsersFromSpreadsheet
	template    app.GenerateTemplate
}

func NewImportHandler(importUsers app.ImportUsersFromSpreadsheet, template app.GenerateTemplate) *ImportHandler {
	return &ImportHandler{importUsers: importUsers, template: template}
}

func (h *ImportHandler) DownloadTemplate(c echo.Context) error {
	out, err := h.template.Execute(c.Request().Context())
	if err != nil {
		logging.FromContext(c.Request().Context(), logrus.StandardLogger()).WithError(err).Error("failed to generate template")
		return writeError(c, http.StatusInternalServerError, "internal_error", "failed to generate template")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", out.FileName))
	return c.Blob(http.StatusOK, out.ContentType, out.Content)
}

func (h *ImportHandler) ImportUsers(c echo.Context) error {
	header, err := c.FormFile(importFormField)
	if err != nil {
		return writeError(c, http.StatusBadRequest, "no_file", "No file uploaded")
	}

	src, err := header.Open()
	if err != nil {
		return writeError(c, http.StatusBadRequest, "unreadable_file", "uploaded file could not be read")
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return writeError(c, http.StatusBadRequest, "unreadable_file", "uploaded file could not be read")
	}

	result, err := h.importUsers.Execute(c.Request().Context(), app.ImportUsersFromSpreadsheetInput{Content: content})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUnreadableFile):
			return writeError(c, http.StatusBadRequest, "unreadable_file", "File is not a readable spreadsheet")
		case errors.Is(err, app.ErrEmptySheet):
			return writeError(c, http.StatusBadRequest, "empty_sheet", "Excel file is empty")
		case errors.Is(err, app.ErrEmailAlreadyExists):
			return writeError(c, http.StatusConflict, "email_exists", "Emails already exist")
		}
		logging.FromContext(c.Request().Context(), logrus.StandardLogger()).WithError(err).Error("failed to import users")
		return writeError(c, http.StatusInternalServerError, "internal_error", "failed to import users")
	}

	if !result.Success {
		return writeErrorDetails(c, http.StatusBadRequest, importFailureCode(result), result.Message, result.Errors)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: result})
}

func importFailureCode(result app.ImportResult) string {
	for _, rowErr := range result.Errors {
		if rowErr.Kind == domain.RowErrorDuplicateInStore {
			return "email_exists"
		}
	}
	return "validation_failed"
}
