// controllers/export.go
//
// PDF and Excel exports of the staff reports.
package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"serenity-spa-backend/config"
	"serenity-spa-backend/models"
	"serenity-spa-backend/utils"
)

func revenueSummary() (total, today, month float64) {
	now := time.Now()
	startOfDay := utils.BeginningOfDay(now)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	config.DB.Model(&models.Booking{}).Where("paid = ?", true).
		Select("COALESCE(SUM(total_price), 0)").Scan(&total)
	config.DB.Model(&models.Booking{}).
		Where("paid = ? AND payment_date >= ?", true, startOfDay).
		Select("COALESCE(SUM(total_price), 0)").Scan(&today)
	config.DB.Model(&models.Booking{}).
		Where("paid = ? AND payment_date >= ?", true, firstOfMonth).
		Select("COALESCE(SUM(total_price), 0)").Scan(&month)
	return
}

func serviceRevenueRows() []ServiceRevenue {
	var rows []ServiceRevenue
	config.DB.Raw(`
        SELECT s.name AS name, SUM(b.total_price) AS total, COUNT(b.id) AS count
        FROM bookings b
        JOIN services s ON s.id = b.service_id
        WHERE b.paid = ?
        GROUP BY s.name
        ORDER BY total DESC
    `, true).Scan(&rows)
	return rows
}

func exportBookingRows() []models.Booking {
	var bookings []models.Booking
	config.DB.Preload("User").Preload("Service").
		Order("booking_date DESC, booking_time DESC").
		Limit(200).
		Find(&bookings)
	return bookings
}

// ExportRevenuePDF streams the revenue report as a PDF attachment
func ExportRevenuePDF(c *gin.Context) {
	total, today, month := revenueSummary()

	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(0, 123, 255)
	pdf.CellFormat(0, 12, "Revenue Report", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 7, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Total revenue: $%.2f", total), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Revenue today: $%.2f", today), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Revenue this month: $%.2f", month), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Revenue by Service", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(0, 123, 255)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(80, 8, "Service", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 8, "Bookings", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 8, "Revenue", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range serviceRevenueRows() {
		pdf.CellFormat(80, 8, row.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%d", row.Count), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("$%.2f", row.Total), "1", 1, "R", false, 0, "")
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="revenue-report.pdf"`)
	if err := pdf.Output(c.Writer); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate PDF")
	}
}

// ExportBookingsPDF streams the bookings list as a PDF attachment
func ExportBookingsPDF(c *gin.Context) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(0, 123, 255)
	pdf.CellFormat(0, 12, "Bookings Report", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(0, 123, 255)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(45, 8, "User", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 8, "Service", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 8, "Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 8, "Status", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 8, "Amount", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, booking := range exportBookingRows() {
		pdf.CellFormat(45, 7, booking.User.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 7, booking.Service.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, booking.BookingDate.Format("2006-01-02"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 7, booking.Status, "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("$%.2f", booking.TotalPrice), "1", 1, "R", false, 0, "")
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="bookings-report.pdf"`)
	if err := pdf.Output(c.Writer); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate PDF")
	}
}

// ExportRevenueExcel streams the revenue report as an xlsx attachment
func ExportRevenueExcel(c *gin.Context) {
	total, today, month := revenueSummary()

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Revenue"
	f.SetSheetName("Sheet1", sheet)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Color: "007BFF"},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"007BFF"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	moneyFormat := "$#,##0.00"
	moneyStyle, _ := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFormat})

	f.SetCellValue(sheet, "A1", "Revenue Report")
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)
	f.SetCellValue(sheet, "A2", fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04")))

	f.SetCellValue(sheet, "A4", "Total Revenue")
	f.SetCellValue(sheet, "B4", total)
	f.SetCellValue(sheet, "A5", "Revenue Today")
	f.SetCellValue(sheet, "B5", today)
	f.SetCellValue(sheet, "A6", "Revenue This Month")
	f.SetCellValue(sheet, "B6", month)
	f.SetCellStyle(sheet, "B4", "B6", moneyStyle)

	f.SetCellValue(sheet, "A9", "Service")
	f.SetCellValue(sheet, "B9", "Bookings")
	f.SetCellValue(sheet, "C9", "Revenue")
	f.SetCellStyle(sheet, "A9", "C9", headerStyle)

	row := 9
	for _, item := range serviceRevenueRows() {
		row++
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), item.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), item.Count)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), item.Total)
		f.SetCellStyle(sheet, fmt.Sprintf("C%d", row), fmt.Sprintf("C%d", row), moneyStyle)
	}

	f.SetColWidth(sheet, "A", "A", 25)
	f.SetColWidth(sheet, "B", "C", 15)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="revenue-report.xlsx"`)
	if err := f.Write(c.Writer); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate Excel file")
	}
}

// ExportBookingsExcel streams the bookings list as an xlsx attachment
func ExportBookingsExcel(c *gin.Context) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Bookings"
	f.SetSheetName("Sheet1", sheet)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Color: "007BFF"},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"007BFF"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	moneyFormat := "$#,##0.00"
	moneyStyle, _ := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFormat})

	f.SetCellValue(sheet, "A1", "Bookings Report")
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)

	headers := []string{"User", "Service", "Date", "Time", "Status", "Amount"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c3", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}
	f.SetCellStyle(sheet, "A3", "F3", headerStyle)

	row := 3
	for _, booking := range exportBookingRows() {
		row++
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), booking.User.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), booking.Service.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), booking.BookingDate.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), booking.BookingTime)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), booking.Status)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), booking.TotalPrice)
		f.SetCellStyle(sheet, fmt.Sprintf("F%d", row), fmt.Sprintf("F%d", row), moneyStyle)
	}

	f.SetColWidth(sheet, "A", "B", 20)
	f.SetColWidth(sheet, "C", "F", 13)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="bookings-report.xlsx"`)
	if err := f.Write(c.Writer); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate Excel file")
	}
}
