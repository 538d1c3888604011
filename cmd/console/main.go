package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/avelkner/innkeeper/config"
	"github.com/avelkner/innkeeper/internal/app"
)

// console is the interactive menu front end. It talks to the same
// services and workflow as the HTTP server; no broker is attached, so
// lifecycle events are skipped.
type console struct {
	app *app.App
	in  *bufio.Reader
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// keep the menu readable: only warnings and up reach the terminal
	logCfg := zap.NewDevelopmentConfig()
	logCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	logger, err := logCfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	c := &console{
		app: app.New(cfg, logger, nil),
		in:  bufio.NewReader(os.Stdin),
	}
	c.run()
}

func (c *console) run() {
	fmt.Println(strings.Repeat("=", 42))
	fmt.Println("    Hotel Reservation System")
	fmt.Println(strings.Repeat("=", 42))
	for {
		fmt.Println("\n=== Main Menu ===")
		fmt.Println("1. Hotels")
		fmt.Println("2. Customers")
		fmt.Println("3. Reservations")
		fmt.Println("0. Exit")
		switch c.prompt("Select: ") {
		case "1":
			c.hotelMenu()
		case "2":
			c.customerMenu()
		case "3":
			c.reservationMenu()
		case "0":
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Invalid option. Please try again.")
		}
	}
}

func (c *console) prompt(label string) string {
	fmt.Print(label)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Println("\nGoodbye!")
		os.Exit(0)
	}
	return strings.TrimSpace(line)
}

func printError(err error) {
	fmt.Printf("Error: %v\n", err)
}

func (c *console) hotelMenu() {
	for {
		fmt.Println("\n--- Hotel Management ---")
		fmt.Println("1. Create Hotel")
		fmt.Println("2. Delete Hotel")
		fmt.Println("3. Display Hotel Information")
		fmt.Println("4. Modify Hotel Information")
		fmt.Println("5. Reserve a Room")
		fmt.Println("6. Cancel a Room Reservation")
		fmt.Println("0. Back")
		switch c.prompt("Select: ") {
		case "1":
			c.createHotel()
		case "2":
			if err := c.app.HotelService.DeleteHotel(c.prompt("Hotel ID: ")); err != nil {
				printError(err)
			} else {
				fmt.Println("Hotel deleted.")
			}
		case "3":
			c.displayHotel()
		case "4":
			c.modifyHotel()
		case "5":
			hotelID := c.prompt("Hotel ID: ")
			reservationID := c.prompt("Reservation ID: ")
			if err := c.app.HotelService.ReserveRoom(hotelID, reservationID); err != nil {
				printError(err)
			} else {
				fmt.Println("Room reserved.")
			}
		case "6":
			hotelID := c.prompt("Hotel ID: ")
			reservationID := c.prompt("Reservation ID: ")
			if err := c.app.HotelService.CancelReservation(hotelID, reservationID); err != nil {
				printError(err)
			} else {
				fmt.Println("Room reservation cancelled.")
			}
		case "0":
			return
		default:
			fmt.Println("Invalid option. Please try again.")
		}
	}
}

func (c *console) createHotel() {
	id := c.prompt("Hotel ID: ")
	name := c.prompt("Name: ")
	location := c.prompt("Location: ")
	rating, err := strconv.ParseFloat(c.prompt("Rating (0.0-5.0): "), 64)
	if err != nil {
		fmt.Println("Error: Rating must be a decimal number.")
		return
	}
	totalRooms, err := strconv.Atoi(c.prompt("Total Rooms: "))
	if err != nil {
		fmt.Println("Error: Total rooms must be an integer.")
		return
	}
	hotel, err := c.app.HotelService.CreateHotel(id, name, location, rating, totalRooms)
	if err != nil {
		printError(err)
		return
	}
	fmt.Printf("Hotel '%s' created (ID: %s).\n", hotel.Name, hotel.ID)
}

func (c *console) displayHotel() {
	hotel, err := c.app.HotelService.GetHotelByID(c.prompt("Hotel ID: "))
	if err != nil {
		printError(err)
		return
	}
	fmt.Printf("Hotel ID   : %s\n", hotel.ID)
	fmt.Printf("Name       : %s\n", hotel.Name)
	fmt.Printf("Location   : %s\n", hotel.Location)
	fmt.Printf("Rating     : %g\n", hotel.Rating)
	fmt.Printf("Total Rooms: %d\n", hotel.TotalRooms)
	fmt.Printf("Available  : %d\n", hotel.AvailableRooms)
}

func (c *console) modifyHotel() {
	id := c.prompt("Hotel ID: ")
	field := c.prompt("Field (name/location/rating/total_rooms): ")
	value := c.prompt("New value: ")

	fields := map[string]any{}
	switch field {
	case "rating":
		rating, err := strconv.ParseFloat(value, 64)
		if err != nil {
			fmt.Println("Error: Rating must be a decimal number.")
			return
		}
		fields[field] = rating
	case "total_rooms":
		totalRooms, err := strconv.Atoi(value)
		if err != nil {
			fmt.Println("Error: Total rooms must be an integer.")
			return
		}
		fields[field] = totalRooms
	default:
		fields[field] = value
	}

	if err := c.app.HotelService.ModifyHotel(id, fields); err != nil {
		printError(err)
		return
	}
	fmt.Printf("Hotel '%s' updated.\n", id)
}

func (c *console) customerMenu() {
	for {
		fmt.Println("\n--- Customer Management ---")
		fmt.Println("1. Create Customer")
		fmt.Println("2. Delete Customer")
		fmt.Println("3. Display Customer Information")
		fmt.Println("4. Modify Customer Information")
		fmt.Println("0. Back")
		switch c.prompt("Select: ") {
		case "1":
			id := c.prompt("Customer ID: ")
			name := c.prompt("Name: ")
			email := c.prompt("Email: ")
			phone := c.prompt("Phone: ")
			customer, err := c.app.CustomerService.CreateCustomer(id, name, email, phone)
			if err != nil {
				printError(err)
			} else {
				fmt.Printf("Customer '%s' created (ID: %s).\n", customer.Name, customer.ID)
			}
		case "2":
			if err := c.app.CustomerService.DeleteCustomer(c.prompt("Customer ID: ")); err != nil {
				printError(err)
			} else {
				fmt.Println("Customer deleted.")
			}
		case "3":
			c.displayCustomer()
		case "4":
			c.modifyCustomer()
		case "0":
			return
		default:
			fmt.Println("Invalid option. Please try again.")
		}
	}
}

func (c *console) displayCustomer() {
	customer, err := c.app.CustomerService.GetCustomerByID(c.prompt("Customer ID: "))
	if err != nil {
		printError(err)
		return
	}
	fmt.Printf("Customer ID: %s\n", customer.ID)
	fmt.Printf("Name       : %s\n", customer.Name)
	fmt.Printf("Email      : %s\n", customer.Email)
	fmt.Printf("Phone      : %s\n", customer.Phone)
}

func (c *console) modifyCustomer() {
	id := c.prompt("Customer ID: ")
	field := c.prompt("Field (name/email/phone): ")
	value := c.prompt("New value: ")

	if err := c.app.CustomerService.ModifyCustomer(id, map[string]any{field: value}); err != nil {
		printError(err)
		return
	}
	fmt.Printf("Customer '%s' updated.\n", id)
}

func (c *console) reservationMenu() {
	for {
		fmt.Println("\n--- Reservation Management ---")
		fmt.Println("1. Create Reservation")
		fmt.Println("2. Cancel Reservation")
		fmt.Println("3. Display Reservation Information")
		fmt.Println("0. Back")
		switch c.prompt("Select: ") {
		case "1":
			id := c.prompt("Reservation ID (blank to auto-generate): ")
			customerID := c.prompt("Customer ID: ")
			hotelID := c.prompt("Hotel ID: ")
			checkIn := c.prompt("Check-in date (YYYY-MM-DD): ")
			checkOut := c.prompt("Check-out date (YYYY-MM-DD): ")
			reservation, err := c.app.ReservationWorkflow.CreateReservation(
				id, customerID, hotelID, checkIn, checkOut)
			if err != nil {
				printError(err)
			} else {
				fmt.Printf("Reservation '%s' created.\n", reservation.ID)
			}
		case "2":
			id := c.prompt("Reservation ID: ")
			if err := c.app.ReservationWorkflow.CancelReservation(id); err != nil {
				printError(err)
			} else {
				fmt.Printf("Reservation '%s' cancelled.\n", id)
			}
		case "3":
			c.displayReservation()
		case "0":
			return
		default:
			fmt.Println("Invalid option. Please try again.")
		}
	}
}

func (c *console) displayReservation() {
	reservation, err := c.app.ReservationService.GetReservationByID(c.prompt("Reservation ID: "))
	if err != nil {
		printError(err)
		return
	}
	fmt.Printf("Reservation ID: %s\n", reservation.ID)
	fmt.Printf("Customer ID   : %s\n", reservation.CustomerID)
	fmt.Printf("Hotel ID      : %s\n", reservation.HotelID)
	fmt.Printf("Check-in      : %s\n", reservation.CheckIn)
	fmt.Printf("Check-out     : %s\n", reservation.CheckOut)
	fmt.Printf("Status        : %s\n", reservation.Status)
}
