package handlers

import (
	"log/slog"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"cement-crm-go-be/database"
	"cement-crm-go-be/importer"
	"cement-crm-go-be/models"
)

// Import ingests up to two uploaded .xlsx workbooks, one per form field
// ("dealers", "employees"). Each workbook's first sheet is decoded into raw
// rows, normalized, and inserted row by row; per-row failures are reported
// as skips while the batch continues. An unreadable workbook fails the whole
// request.
func Import(c *fiber.Ctx) error {
	result := fiber.Map{}

	if file, err := c.FormFile("dealers"); err == nil {
		summary, err := importSheet(file, importer.KindDealer)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Import failed: " + err.Error()})
		}
		result["dealers"] = summary
	}

	if file, err := c.FormFile("employees"); err == nil {
		summary, err := importSheet(file, importer.KindEmployee)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Import failed: " + err.Error()})
		}
		result["employees"] = summary
	}

	return c.JSON(result)
}

// importSheet decodes one workbook, normalizes its rows against the phones
// already in storage, and persists the accepted records.
func importSheet(file *multipart.FileHeader, kind importer.EntityKind) (importer.Summary, error) {
	rows, err := decodeWorkbook(file)
	if err != nil {
		return importer.Summary{}, err
	}

	var existing []string
	switch kind {
	case importer.KindDealer:
		err = database.DB.Model(&models.Dealer{}).Pluck("phone", &existing).Error
	case importer.KindEmployee:
		err = database.DB.Model(&models.Employee{}).Pluck("phone", &existing).Error
	case importer.KindSubDealer:
		err = database.DB.Model(&models.SubDealer{}).Pluck("phone", &existing).Error
	}
	if err != nil {
		return importer.Summary{}, err
	}

	seen := importer.NewPhoneSet(existing)
	summary := importer.NormalizeBatch(rows, kind, seen)

	for i := range summary.Details {
		detail := &summary.Details[i]
		if detail.Status != importer.StatusInserted {
			continue
		}
		if err := insertRecord(kind, detail.Record); err != nil {
			slog.Error("import insert failed", "kind", string(kind), "row", detail.Index, "err", err)
			detail.Status = importer.StatusSkipped
			detail.Reason = importer.ReasonError
			summary.Inserted--
			summary.Skipped++
		}
	}

	slog.Info("import sheet processed",
		"kind", string(kind), "rows", len(rows),
		"inserted", summary.Inserted, "skipped", summary.Skipped)
	return summary, nil
}

// decodeWorkbook reads the first worksheet into ordered raw rows, using the
// header row as column labels. Raw cell values are kept so date cells arrive
// as day serials rather than display strings.
func decodeWorkbook(file *multipart.FileHeader) ([]importer.RawRow, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	wb, err := excelize.OpenReader(src)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	cells, err := wb.GetRows(wb.GetSheetName(0), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if len(cells) < 2 {
		return nil, nil
	}

	header := cells[0]
	rows := make([]importer.RawRow, 0, len(cells)-1)
	for _, line := range cells[1:] {
		row := make(importer.RawRow, len(header))
		for j, label := range header {
			if label == "" {
				continue
			}
			if j < len(line) {
				row[label] = line[j]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// insertRecord persists one accepted canonical record.
func insertRecord(kind importer.EntityKind, rec *importer.Record) error {
	switch kind {
	case importer.KindDealer:
		return database.DB.Create(&models.Dealer{
			Name:          rec.Name,
			Address:       rec.Address,
			Phone:         rec.Phone,
			Email:         rec.Email,
			District:      rec.District,
			SalesPromoter: rec.SalesPromoter,
			Dob:           rec.Dob,
			Anniversary:   rec.Anniversary,
			Meta:          rec.Meta,
		}).Error
	case importer.KindSubDealer:
		return database.DB.Create(&models.SubDealer{
			Name:     rec.Name,
			Area:     rec.Area,
			District: rec.District,
			Phone:    rec.Phone,
			Email:    rec.Email,
			Birthday: rec.Birthday,
			Meta:     rec.Meta,
		}).Error
	case importer.KindEmployee:
		return database.DB.Create(&models.Employee{
			Name:     rec.Name,
			Area:     rec.Area,
			Phone:    rec.Phone,
			Email:    rec.Email,
			Birthday: rec.Birthday,
			Meta:     rec.Meta,
		}).Error
	}
	return nil
}
