package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"cement-crm-go-be/database"
	"cement-crm-go-be/models"
	"cement-crm-go-be/reminder"
)

// Clock supplies "now" for the reminder window; swapped out in tests.
var Clock reminder.Clock = reminder.RealClock{}

// UpcomingBirthdays reports entities whose birthday (dealers: date of
// birth) recurs within the requested window. The days parameter is
// required; there is no implicit default window.
func UpcomingBirthdays(c *fiber.Ctx) error {
	raw := c.Query("days")
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "days query parameter is required"})
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "days must be a non-negative integer"})
	}

	records, err := collectDatedRecords()
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(reminder.ComputeUpcoming(records, Clock.Now(), days))
}

// collectDatedRecords loads every entity row carrying a recurring date.
// Rows with NULL dates are filtered in the query; malformed values are left
// for the engine to drop.
func collectDatedRecords() ([]reminder.Record, error) {
	var records []reminder.Record

	var dealers []models.Dealer
	if err := database.DB.Where("dob IS NOT NULL").Find(&dealers).Error; err != nil {
		return nil, err
	}
	for _, d := range dealers {
		records = append(records, reminder.Record{
			ID: d.ID, Entity: "dealers", Name: d.Name, Date: *d.Dob,
			Phone: d.Phone, Email: d.Email,
		})
	}

	var subDealers []models.SubDealer
	if err := database.DB.Where("birthday IS NOT NULL").Find(&subDealers).Error; err != nil {
		return nil, err
	}
	for _, s := range subDealers {
		records = append(records, reminder.Record{
			ID: s.ID, Entity: "subdealers", Name: s.Name, Date: *s.Birthday,
			Phone: s.Phone, Email: s.Email,
		})
	}

	var employees []models.Employee
	if err := database.DB.Where("birthday IS NOT NULL").Find(&employees).Error; err != nil {
		return nil, err
	}
	for _, e := range employees {
		records = append(records, reminder.Record{
			ID: e.ID, Entity: "employees", Name: e.Name, Date: *e.Birthday,
			Phone: e.Phone, Email: e.Email,
		})
	}

	var promoters []models.Promoter
	if err := database.DB.Where("birthday IS NOT NULL").Find(&promoters).Error; err != nil {
		return nil, err
	}
	for _, p := range promoters {
		records = append(records, reminder.Record{
			ID: p.ID, Entity: "promoters", Name: p.Name, Date: *p.Birthday,
			Phone: p.Phone, Email: p.Email,
		})
	}

	return records, nil
}
