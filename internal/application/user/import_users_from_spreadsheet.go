package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/mohammadpnp/user-registry/internal/domain/user"
	"github.com/mohammadpnp/user-registry/internal/logging"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	missingFieldsMessage  = "Missing required field(s)"
	duplicateEmailMessage = "Duplicate email in file"
)

var importFormatMessages = map[string]string{
	domain.FieldEmail:       "Invalid email format",
	domain.FieldPhoneNumber: "Phone must be 10 digits",
	domain.FieldPANNumber:   "Invalid PAN format",
}

type SpreadsheetReader interface {
	ReadRows(ctx context.Context, content []byte) ([]domain.ImportRow, error)
}

type ImportObserver interface {
	ObserveImport(outcome domain.ImportOutcome, result domain.ImportResult)
}

type importEmailLookup interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ImportUsersFromSpreadsheetConfig struct {
	ConflictCheckConcurrency int
}

type ImportUsersFromSpreadsheetInput struct {
	Content []byte
}

type ImportUsersFromSpreadsheet interface {
	Execute(ctx context.Context, in ImportUsersFromSpreadsheetInput) (ImportResult, error)
}

type importUsersFromSpreadsheet struct {
	reader   SpreadsheetReader
	users    importEmailLookup
	inserter domain.BulkUserInserter
	observer ImportObserver
	logger   logrus.FieldLogger
	cfg      ImportUsersFromSpreadsheetConfig
}

type importCandidate struct {
	row  int
	user domain.User
}

func NewImportUsersFromSpreadsheet(
	reader SpreadsheetReader,
	users importEmailLookup,
	inserter domain.BulkUserInserter,
	observer ImportObserver,
	logger logrus.FieldLogger,
	cfg ImportUsersFromSpreadsheetConfig,
) ImportUsersFromSpreadsheet {
	if cfg.ConflictCheckConcurrency <= 0 {
		cfg.ConflictCheckConcurrency = 4
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &importUsersFromSpreadsheet{
		reader:   reader,
		users:    users,
		inserter: inserter,
		observer: observer,
		logger:   logger,
		cfg:      cfg,
	}
}

// Execute runs decode, per-row validation, the store conflict check and the
// batch insert in that order. Row errors and store conflicts are reported in
// full through the returned ImportResult; nothing is written unless every row
// passes both checks.
func (uc *importUsersFromSpreadsheet) Execute(ctx context.Context, in ImportUsersFromSpreadsheetInput) (ImportResult, error) {
	started := time.Now()
	log := logging.FromContext(ctx, uc.logger)

	rows, err := uc.reader.ReadRows(ctx, in.Content)
	if err != nil {
		uc.observe(domain.ImportOutcomeInvalidFile, ImportResult{})
		log.WithError(err).Warn("user import rejected: unreadable spreadsheet")

		switch {
		case errors.Is(err, domain.ErrUnreadableFile):
			return ImportResult{}, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
		case errors.Is(err, domain.ErrEmptySheet):
			return ImportResult{}, ErrEmptySheet
		}
		return ImportResult{}, fmt.Errorf("%w: read spreadsheet: %v", ErrImportUsers, err)
	}

	candidates, rowErrs := validateImportRows(rows)
	if len(rowErrs) > 0 {
		result := ImportResult{Message: "Validation errors", Errors: rowErrs}
		uc.observe(domain.ImportOutcomeRejected, result)
		log.WithFields(logrus.Fields{
			"rows":   len(rows),
			"errors": len(rowErrs),
		}).Info("user import rejected: invalid rows")
		return result, nil
	}

	conflicts, err := uc.findStoreConflicts(ctx, candidates)
	if err != nil {
		uc.observe(domain.ImportOutcomeFailed, ImportResult{})
		log.WithError(err).Error("user import failed: conflict check")
		return ImportResult{}, fmt.Errorf("%w: %v", ErrImportUsers, err)
	}
	if len(conflicts) > 0 {
		result := ImportResult{Message: "Emails already exist", Errors: conflicts}
		uc.observe(domain.ImportOutcomeConflicted, result)
		log.WithFields(logrus.Fields{
			"rows":      len(rows),
			"conflicts": len(conflicts),
		}).Info("user import rejected: emails already exist")
		return result, nil
	}

	users := make([]domain.User, 0, len(candidates))
	for _, c := range candidates {
		users = append(users, c.user)
	}

	count, err := uc.inserter.InsertMany(ctx, users)
	if err != nil {
		uc.observe(domain.ImportOutcomeFailed, ImportResult{})
		log.WithError(err).Error("user import failed: insert batch")

		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return ImportResult{}, fmt.Errorf("%w: %v", ErrEmailAlreadyExists, err)
		}
		return ImportResult{}, fmt.Errorf("%w: insert batch: %v", ErrImportUsers, err)
	}

	result := ImportResult{
		Success:       true,
		Message:       fmt.Sprintf("Imported %d users", count),
		ImportedCount: int(count),
	}
	uc.observe(domain.ImportOutcomeImported, result)
	log.WithFields(logrus.Fields{
		"rows":     len(rows),
		"imported": count,
		"elapsed":  time.Since(started).String(),
	}).Info("user import completed")

	return result, nil
}

func (uc *importUsersFromSpreadsheet) observe(outcome domain.ImportOutcome, result ImportResult) {
	if uc.observer != nil {
		uc.observer.ObserveImport(outcome, result)
	}
}

// validateImportRows yields exactly one outcome per row: a candidate or a
// RowError. The first failing check of a row is the only one reported.
func validateImportRows(rows []domain.ImportRow) ([]importCandidate, []RowError) {
	var (
		candidates = make([]importCandidate, 0, len(rows))
		rowErrs    []RowError
		seen       = make(map[string]struct{}, len(rows))
	)

	for _, row := range rows {
		fields := domain.Fields{
			FirstName:   row.Cell(domain.ColumnFirstName),
			LastName:    row.Cell(domain.ColumnLastName),
			Email:       row.Cell(domain.ColumnEmail),
			PhoneNumber: row.Cell(domain.ColumnPhoneNumber),
			PANNumber:   row.Cell(domain.ColumnPANNumber),
		}
		fields.Normalize()

		if rowErr, failed := rowViolation(row.Number, domain.ValidateFields(fields)); failed {
			rowErrs = append(rowErrs, rowErr)
			continue
		}

		if _, dup := seen[fields.Email]; dup {
			rowErrs = append(rowErrs, RowError{
				Row:     row.Number,
				Field:   domain.ColumnEmail,
				Kind:    domain.RowErrorDuplicateInFile,
				Message: duplicateEmailMessage,
			})
			continue
		}
		seen[fields.Email] = struct{}{}

		candidates = append(candidates, importCandidate{
			row: row.Number,
			user: domain.User{
				FirstName:   fields.FirstName,
				LastName:    fields.LastName,
				Email:       fields.Email,
				PhoneNumber: fields.PhoneNumber,
				PANNumber:   fields.PANNumber,
			},
		})
	}

	return candidates, rowErrs
}

func rowViolation(rowNumber int, violations []Violation) (RowError, bool) {
	if len(violations) == 0 {
		return RowError{}, false
	}

	for _, v := range violations {
		if v.Rule == domain.RuleRequiredField {
			return RowError{
				Row:     rowNumber,
				Kind:    domain.RowErrorRequiredField,
				Message: missingFieldsMessage,
			}, true
		}
	}

	first := violations[0]
	return RowError{
		Row:     rowNumber,
		Field:   domain.ColumnForField(first.Field),
		Kind:    domain.RowErrorInvalidFormat,
		Message: importFormatMessages[first.Field],
	}, true
}

func (uc *importUsersFromSpreadsheet) findStoreConflicts(ctx context.Context, candidates []importCandidate) ([]RowError, error) {
	exists := make([]bool, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.ConflictCheckConcurrency)
	for i, c := range candidates {
		g.Go(func() error {
			_, err := uc.users.FindByEmail(gctx, c.user.Email)
			switch {
			case err == nil:
				exists[i] = true
			case !errors.Is(err, domain.ErrUserNotFound):
				return fmt.Errorf("check email %q: %w", c.user.Email, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var conflicts []RowError
	for i, c := range candidates {
		if !exists[i] {
			continue
		}
		conflicts = append(conflicts, RowError{
			Row:     c.row,
			Field:   domain.ColumnEmail,
			Kind:    domain.RowErrorDuplicateInStore,
			Message: "Exists: " + c.user.Email,
		})
	}
	return conflicts, nil
}
