package data

import (
	"time"

	"github.com/shopspring/decimal"

	"ticketq/models"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func Tickets() []models.Ticket {
	return []models.Ticket{
		{
			ID:           1,
			Title:        "DWP 2025 - VIP Access",
			Type:         models.TypeVIP,
			Price:        decimal.RequireFromString("299.99"),
			IsUsed:       false,
			PurchaseDate: date(2025, 7, 15),
			EventDate:    time.Date(2025, 8, 31, 20, 0, 0, 0, time.UTC),
			Venue:        "JIExpo Kemayoran, Jakarta",
			Artist:       "Various Artists",
			Section:      "A",
			Row:          "1",
			Seat:         "15",
			Description:  "VIP access to Djakarta Warehouse Project 2025 with exclusive viewing area and complimentary drinks.",
			Features:     []string{"Express Entry", "VIP Lounge", "Meet & Greet", "Free Drinks"},
			Notes: []models.Note{
				{ID: 1, Author: "System", Content: "Ticket activated and ready for use", CreatedAt: date(2025, 7, 15)},
			},
		},
		{
			ID:           2,
			Title:        "DWP 2025 - Premium Pass",
			Type:         models.TypePremium,
			Price:        decimal.RequireFromString("199.99"),
			IsUsed:       false,
			PurchaseDate: date(2025, 7, 20),
			EventDate:    time.Date(2025, 8, 31, 20, 0, 0, 0, time.UTC),
			Venue:        "JIExpo Kemayoran, Jakarta",
			Artist:       "Various Artists",
			Section:      "B",
			Row:          "3",
			Seat:         "42",
			Description:  "Premium access to Djakarta Warehouse Project 2025 with priority entry and premium viewing areas.",
			Features:     []string{"Priority Entry", "Premium Area", "Merchandise Pack"},
		},
		{
			ID:           3,
			Title:        "DWP 2025 - Standard Entry",
			Type:         models.TypeStandard,
			Price:        decimal.RequireFromString("99.99"),
			IsUsed:       true,
			PurchaseDate: date(2025, 7, 25),
			EventDate:    time.Date(2025, 8, 31, 20, 0, 0, 0, time.UTC),
			Venue:        "JIExpo Kemayoran, Jakarta",
			Artist:       "Various Artists",
			Section:      "C",
			Row:          "10",
			Seat:         "78",
			Description:  "Standard entry ticket to Djakarta Warehouse Project 2025.",
			Features:     []string{"General Admission"},
			Notes: []models.Note{
				{ID: 1, Author: "Staff", Content: "Ticket has been scanned and used", CreatedAt: date(2025, 8, 1)},
			},
		},
		{
			ID:           4,
			Title:        "Coldplay World Tour - VIP",
			Type:         models.TypeVIP,
			Price:        decimal.RequireFromString("350.00"),
			IsUsed:       false,
			PurchaseDate: date(2025, 6, 10),
			EventDate:    time.Date(2025, 9, 15, 19, 30, 0, 0, time.UTC),
			Venue:        "Gelora Bung Karno Stadium, Jakarta",
			Artist:       "Coldplay",
			Section:      "Gold",
			Row:          "2",
			Seat:         "7",
			Description:  "VIP ticket for Coldplay's Music of the Spheres World Tour in Jakarta.",
			Features:     []string{"VIP Entry", "Merchandise Pack", "Early Access", "Premium Viewing"},
		},
		{
			ID:           5,
			Title:        "Coldplay World Tour - Premium",
			Type:         models.TypePremium,
			Price:        decimal.RequireFromString("250.00"),
			IsUsed:       false,
			PurchaseDate: date(2025, 6, 15),
			EventDate:    time.Date(2025, 9, 15, 19, 30, 0, 0, time.UTC),
			Venue:        "Gelora Bung Karno Stadium, Jakarta",
			Artist:       "Coldplay",
			Section:      "Silver",
			Row:          "5",
			Seat:         "22",
			Description:  "Premium seating for Coldplay's Music of the Spheres World Tour in Jakarta.",
			Features:     []string{"Premium Seating", "Fast Track Entry"},
		},
		{
			ID:           6,
			Title:        "Coldplay World Tour - Standard",
			Type:         models.TypeStandard,
			Price:        decimal.RequireFromString("150.00"),
			IsUsed:       false,
			PurchaseDate: date(2025, 6, 20),
			EventDate:    time.Date(2025, 9, 15, 19, 30, 0, 0, time.UTC),
			Venue:        "Gelora Bung Karno Stadium, Jakarta",
			Artist:       "Coldplay",
			Section:      "Bronze",
			Row:          "15",
			Seat:         "45",
			Description:  "Standard admission to Coldplay's Music of the Spheres World Tour in Jakarta.",
			Features:     []string{"General Admission"},
		},
		{
			ID:           7,
			Title:        "Taylor Swift Eras Tour - VIP",
			Type:         models.TypeVIP,
			Price:        decimal.RequireFromString("400.00"),
			IsUsed:       false,
			PurchaseDate: date(2025, 5, 5),
			EventDate:    time.Date(2025, 10, 20, 19, 0, 0, 0, time.UTC),
			Venue:        "Gelora Bung Karno Stadium, Jakarta",
			Artist:       "Taylor Swift",
			Section:      "Diamond",
			Row:          "1",
			Seat:         "10",
			Description:  "VIP package for Taylor Swift's Eras Tour in Jakarta with exclusive merchandise and early entry.",
			Features:     []string{"VIP Package", "Early Entry", "Exclusive Merch", "Premium Viewing"},
		},
		{
			ID:           8,
			Title:        "Taylor Swift Eras Tour - Premium",
			Type:         models.TypePremium,
			Price:        decimal.RequireFromString("275.00"),
			IsUsed:       false,
			PurchaseDate: date(2025, 5, 10),
			EventDate:    time.Date(2025, 10, 20, 19, 0, 0, 0, time.UTC),
			Venue:        "Gelora Bung Karno Stadium, Jakarta",
			Artist:       "Taylor Swift",
			Section:      "Platinum",
			Row:          "4",
			Seat:         "30",
			Description:  "Premium seating for Taylor Swift's Eras Tour in Jakarta.",
			Features:     []string{"Premium Seating", "Tour Program"},
		},
		{
			ID:           9,
			Title:        "Taylor Swift Eras Tour - Standard",
			Type:         models.TypeStandard,
			Price:        decimal.RequireFromString("175.00"),
			IsUsed:       true,
			PurchaseDate: date(2025, 5, 15),
			EventDate:    time.Date(2025, 10, 20, 19, 0, 0, 0, time.UTC),
			Venue:        "Gelora Bung Karno Stadium, Jakarta",
			Artist:       "Taylor Swift",
			Section:      "Gold",
			Row:          "20",
			Seat:         "55",
			Description:  "Standard admission to Taylor Swift's Eras Tour in Jakarta.",
			Features:     []string{"General Admission"},
			Notes: []models.Note{
				{ID: 1, Author: "System", Content: "Ticket transferred from original purchaser", CreatedAt: date(2025, 7, 1)},
			},
		},
		{
			ID:           10,
			Title:        "Ed Sheeran Mathematics Tour - VIP",
			Type:         models.TypeVIP,
			Price:        decimal.RequireFromString("300.00"),
			IsUsed:       false,
			PurchaseDate: date(2025, 4, 20),
			EventDate:    time.Date(2025, 11, 5, 20, 0, 0, 0, time.UTC),
			Venue:        "Sentul International Convention Center, Bogor",
			Artist:       "Ed Sheeran",
			Section:      "Front",
			Row:          "2",
			Seat:         "15",
			Description:  "VIP experience for Ed Sheeran's Mathematics Tour with soundcheck access and exclusive merchandise.",
			Features:     []string{"Soundcheck Access", "VIP Merchandise", "Priority Entry"},
		},
	}
}
