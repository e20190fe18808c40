package notify

import "fmt"

// Message is a rendered notification.
type Message struct {
	Subject string
	Text    string
}

// Render fills the message template for the event.
func Render(event Event, to Recipient) Message {
	switch event.Type {
	case EventWelcome:
		return Message{
			Subject: "Welcome to CloudStay!",
			Text: "Hi,\n\n" +
				"Welcome to CloudStay! 🎉 We're thrilled to have you on board.\n\n" +
				"Whether you're searching for the perfect stay or looking to host travelers, " +
				"CloudStay is here to make your experience seamless and enjoyable.\n\n" +
				"Start exploring today and find your perfect destination! 🌍✨\n\n" +
				"Best,\nCloudStay Team",
		}
	case EventBookingConfirmed:
		return Message{
			Subject: "Booking Successful!",
			Text: fmt.Sprintf("Hi %s,\n\n", to.Name) +
				"Your booking at CloudStay is confirmed! 🎉 We're excited to host you.\n\n" +
				"Booking Details:\n" +
				fmt.Sprintf("Transaction ID: %s\n\n", event.Data["transactionId"]) +
				"If you have any questions or special requests, feel free to reach out. Safe travels!\n\n" +
				"Best,\nCloudStay Team",
		}
	case EventRoomBooked:
		return Message{
			Subject: "Your room got booked!",
			Text: fmt.Sprintf("Hi %s,\n\n", to.Name) +
				"Great news! 🎉 Your room has been successfully booked on CloudStay.\n\n" +
				"Guest Details:\n" +
				fmt.Sprintf("Guest Name: %s\n\n", event.Data["guestName"]) +
				"Please ensure the room is ready and communicate any necessary details with your guest. " +
				"Wishing you a smooth hosting experience!\n\n" +
				"Best,\nCloudStay Team",
		}
	default:
		return Message{Subject: "CloudStay", Text: string(event.Type)}
	}
}
