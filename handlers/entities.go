package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"cement-crm-go-be/database"
	"cement-crm-go-be/models"
)

// DealerRequest represents the payload for creating or updating a dealer
type DealerRequest struct {
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	District      string  `json:"district"`
	SalesPromoter string  `json:"sales_promoter"`
	Dob           *string `json:"dob"`
	Anniversary   *string `json:"anniversary"`
	Meta          string  `json:"meta"`
}

// SubDealerRequest represents the payload for creating or updating a sub-dealer
type SubDealerRequest struct {
	Name      string     `json:"name"`
	DealerID  *uuid.UUID `json:"dealer_id"`
	Area      string     `json:"area"`
	District  string     `json:"district"`
	Potential float64    `json:"potential"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email"`
	Birthday  *string    `json:"birthday"`
	Meta      string     `json:"meta"`
}

// EmployeeRequest represents the payload for creating or updating an employee
type EmployeeRequest struct {
	Name     string  `json:"name"`
	Area     string  `json:"area"`
	District string  `json:"district"`
	Phone    string  `json:"phone"`
	Email    string  `json:"email"`
	Birthday *string `json:"birthday"`
	Meta     string  `json:"meta"`
}

// PromoterRequest represents the payload for creating or updating a promoter
type PromoterRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Birthday *string `json:"birthday"`
	Meta     string  `json:"meta"`
}

// ListEntities returns all records of one entity kind, newest first.
func ListEntities(c *fiber.Ctx) error {
	switch c.Params("entity") {
	case "dealers":
		var rows []models.Dealer
		if err := database.DB.Order("created_at DESC").Find(&rows).Error; err != nil {
			return serverError(c, err)
		}
		return c.JSON(rows)
	case "subdealers":
		var rows []models.SubDealer
		if err := database.DB.Order("created_at DESC").Find(&rows).Error; err != nil {
			return serverError(c, err)
		}
		return c.JSON(rows)
	case "employees":
		var rows []models.Employee
		if err := database.DB.Order("created_at DESC").Find(&rows).Error; err != nil {
			return serverError(c, err)
		}
		return c.JSON(rows)
	case "promoters":
		var rows []models.Promoter
		if err := database.DB.Order("created_at DESC").Find(&rows).Error; err != nil {
			return serverError(c, err)
		}
		return c.JSON(rows)
	default:
		return unknownEntity(c)
	}
}

// CreateEntity inserts one record. Dealers, sub-dealers, and employees
// require name and phone; promoters require name.
func CreateEntity(c *fiber.Ctx) error {
	switch c.Params("entity") {
	case "dealers":
		var req DealerRequest
		if err := c.BodyParser(&req); err != nil {
			return badBody(c)
		}
		if req.Name == "" || req.Phone == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dealers require name and phone"})
		}
		row := models.Dealer{
			Name: req.Name, Address: req.Address, Phone: req.Phone, Email: req.Email,
			District: req.District, SalesPromoter: req.SalesPromoter,
			Dob: req.Dob, Anniversary: req.Anniversary, Meta: req.Meta,
		}
		if err := database.DB.Create(&row).Error; err != nil {
			return serverError(c, err)
		}
		return c.JSON(fiber.Map{"id": row.ID})
	case "subdealers":
		var req SubDealerRequest
		if err := c.BodyParser(&req); err != nil {
			return badBody(c)
		}
		if req.Name == "" || req.Phone == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "SubDealers require name and phone"})
		}
		row := models.SubDealer{
			Name: req.Name, DealerID: req.DealerID, Area: req.Area, District: req.District,
			Potential: req.Potential, Phone: req.Phone, Email: req.Email,
			Birthday: req.Birthday, Meta: req.Meta,
		}
		if err := database.DB.Create(&row).Error; err != nil {
			return serverError(c, err)
		}
		return c.JSON(fiber.Map{"id": row.ID})
	case "employees":
		var req EmployeeRequest
		if err := c.BodyParser(&req); err != nil {
			return badBody(c)
		}
		if req.Name == "" || req.Phone == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Employees require name and phone"})
		}
		row := models.Employee{
			Name: req.Name, Area: req.Area, District: req.District, Phone: req.Phone,
			Email: req.Email, Birthday: req.Birthday, Meta: req.Meta,
		}
		if err := database.DB.Create(&row).Error; err != nil {
			return serverError(c, err)
		}
		return c.JSON(fiber.Map{"id": row.ID})
	case "promoters":
		var req PromoterRequest
		if err := c.BodyParser(&req); err != nil {
			return badBody(c)
		}
		if req.Name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
		}
		row := models.Promoter{
			Name: req.Name, Email: req.Email, Phone: req.Phone,
			Birthday: req.Birthday, Meta: req.Meta,
		}
		if err := database.DB.Create(&row).Error; err != nil {
			return serverError(c, err)
		}
		return c.JSON(fiber.Map{"id": row.ID})
	default:
		return unknownEntity(c)
	}
}

// UpdateEntity overwrites the editable columns of one record.
func UpdateEntity(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	switch c.Params("entity") {
	case "dealers":
		var req DealerRequest
		if err := c.BodyParser(&req); err != nil {
			return badBody(c)
		}
		var row models.Dealer
		if err := database.DB.First(&row, "id = ?", id).Error; err != nil {
			return notFound(c)
		}
		row.Name = req.Name
		row.Address = req.Address
		row.Phone = req.Phone
		row.Email = req.Email
		row.District = req.District
		row.SalesPromoter = req.SalesPromoter
		row.Dob = req.Dob
		row.Anniversary = req.Anniversary
		row.Meta = req.Meta
		if err := database.DB.Save(&row).Error; err != nil {
			return serverError(c, err)
		}
	case "subdealers":
		var req SubDealerRequest
		if err := c.BodyParser(&req); err != nil {
			return badBody(c)
		}
		var row models.SubDealer
		if err := database.DB.First(&row, "id = ?", id).Error; err != nil {
			return notFound(c)
		}
		row.Name = req.Name
		row.DealerID = req.DealerID
		row.Area = req.Area
		row.District = req.District
		row.Potential = req.Potential
		row.Phone = req.Phone
		row.Email = req.Email
		row.Birthday = req.Birthday
		row.Meta = req.Meta
		if err := database.DB.Save(&row).Error; err != nil {
			return serverError(c, err)
		}
	case "employees":
		var req EmployeeRequest
		if err := c.BodyParser(&req); err != nil {
			return badBody(c)
		}
		var row models.Employee
		if err := database.DB.First(&row, "id = ?", id).Error; err != nil {
			return notFound(c)
		}
		row.Name = req.Name
		row.Area = req.Area
		row.District = req.District
		row.Phone = req.Phone
		row.Email = req.Email
		row.Birthday = req.Birthday
		row.Meta = req.Meta
		if err := database.DB.Save(&row).Error; err != nil {
			return serverError(c, err)
		}
	case "promoters":
		var req PromoterRequest
		if err := c.BodyParser(&req); err != nil {
			return badBody(c)
		}
		var row models.Promoter
		if err := database.DB.First(&row, "id = ?", id).Error; err != nil {
			return notFound(c)
		}
		row.Name = req.Name
		row.Email = req.Email
		row.Phone = req.Phone
		row.Birthday = req.Birthday
		row.Meta = req.Meta
		if err := database.DB.Save(&row).Error; err != nil {
			return serverError(c, err)
		}
	default:
		return unknownEntity(c)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// DeleteEntity removes one record.
func DeleteEntity(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	var delErr error
	switch c.Params("entity") {
	case "dealers":
		delErr = database.DB.Delete(&models.Dealer{}, "id = ?", id).Error
	case "subdealers":
		delErr = database.DB.Delete(&models.SubDealer{}, "id = ?", id).Error
	case "employees":
		delErr = database.DB.Delete(&models.Employee{}, "id = ?", id).Error
	case "promoters":
		delErr = database.DB.Delete(&models.Promoter{}, "id = ?", id).Error
	default:
		return unknownEntity(c)
	}
	if delErr != nil {
		return serverError(c, delErr)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func unknownEntity(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown entity"})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
}

func serverError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error: " + err.Error()})
}
