package websocket

import (
	"log"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
)

type Client struct {
	UserID uint
	Conn   *websocket.Conn
}

// SubmissionEvent is what connected tutors and admins see the moment a
// student's attempt is scored.
type SubmissionEvent struct {
	TestID         uint      `json:"test_id"`
	UserID         uint      `json:"user_id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Passed         bool      `json:"passed"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

var clients = make(map[*websocket.Conn]uint)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan *SubmissionEvent, 16)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Results feed client registered: user %d", client.UserID)
			clientsMu.Lock()
			clients[client.Conn] = client.UserID
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Results feed client unregistered: user %d", client.UserID)
			clientsMu.Lock()
			delete(clients, client.Conn)
			clientsMu.Unlock()
		case event := <-Broadcast:
			clientsMu.Lock()
			for conn := range clients {
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("Error sending submission event to client: %v", err)
					conn.Close()
					delete(clients, conn)
				}
			}
			clientsMu.Unlock()
		}
	}
}

// BroadcastSubmission hands the event to the hub without blocking the
// request that produced it; if the hub is saturated the event is dropped.
func BroadcastSubmission(event *SubmissionEvent) {
	select {
	case Broadcast <- event:
	default:
		log.Println("Results feed backlog full, dropping submission event")
	}
}
