package http

import (
	"net/http"

	"github.com/dkeye/Cinema/internal/core"
	"github.com/dkeye/Cinema/internal/domain"
	"github.com/gin-gonic/gin"
)

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Watch Together API is running",
	})
}

func handleListRooms(rooms core.RoomStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"rooms": rooms.List()})
	}
}

// handleGetRoom is the read-only out-of-band lookup; it returns the same
// snapshot shape the joiner receives over the socket.
func handleGetRoom(rooms core.RoomStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := domain.RoomID(c.Param("roomId"))
		room, ok := rooms.Get(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Room not found"})
			return
		}
		c.JSON(http.StatusOK, room.Snapshot())
	}
}
