package services

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// RequestEntityType subscribes a stream to every log of one X-Request-ID
const RequestEntityType = "request"

// SSEHub manages Server-Sent Events connections for real-time generation logs
type SSEHub struct {
	// Key format: "entity_type:entity_id" or "request:request_id"
	clients map[string]map[chan []byte]bool
	mu      sync.RWMutex
}

// NewSSEHub creates a new SSE hub
func NewSSEHub() *SSEHub {
	return &SSEHub{
		clients: make(map[string]map[chan []byte]bool),
	}
}

func hubKey(entityType, entityID string) string {
	return fmt.Sprintf("%s:%s", entityType, entityID)
}

// RegisterClient registers a new SSE client for an entity
func (h *SSEHub) RegisterClient(entityType, entityID string) chan []byte {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := hubKey(entityType, entityID)
	clientChan := make(chan []byte, 10)

	if h.clients[key] == nil {
		h.clients[key] = make(map[chan []byte]bool)
	}
	h.clients[key][clientChan] = true

	logrus.Infof("SSE client registered for %s (total clients: %d)", key, len(h.clients[key]))
	return clientChan
}

// UnregisterClient unregisters an SSE client and closes its channel
func (h *SSEHub) UnregisterClient(entityType, entityID string, clientChan chan []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := hubKey(entityType, entityID)
	if clients := h.clients[key]; clients != nil {
		if clients[clientChan] {
			delete(clients, clientChan)
			close(clientChan)
		}
		if len(clients) == 0 {
			delete(h.clients, key)
		}
	}

	logrus.Infof("SSE client unregistered for %s (remaining clients: %d)", key, len(h.clients[key]))
}

// BroadcastLog sends a log to the clients of its entity and of its request
func (h *SSEHub) BroadcastLog(log *models.GenerationLog) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	keys := []string{hubKey(log.EntityType, log.EntityID)}
	if log.RequestID != "" && log.EntityType != RequestEntityType {
		keys = append(keys, hubKey(RequestEntityType, log.RequestID))
	}

	var message []byte
	for _, key := range keys {
		clients := h.clients[key]
		if len(clients) == 0 {
			continue
		}
		if message == nil {
			logJSON, err := json.Marshal(log)
			if err != nil {
				logrus.Errorf("Failed to marshal log for SSE: %v", err)
				return
			}
			message = []byte(fmt.Sprintf("event: log\ndata: %s\n\n", logJSON))
		}
		h.sendLocked(key, clients, message)
	}
}

// sendLocked delivers without blocking; the caller holds the read lock
func (h *SSEHub) sendLocked(key string, clients map[chan []byte]bool, message []byte) {
	for clientChan := range clients {
		select {
		case clientChan <- message:
		default:
			logrus.Warnf("SSE client channel full, skipping: %s", key)
		}
	}
}

// GetClientCount returns the number of clients for a specific entity
func (h *SSEHub) GetClientCount(entityType, entityID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[hubKey(entityType, entityID)])
}

// SendHeartbeat sends a comment line to keep idle connections open
func (h *SSEHub) SendHeartbeat(entityType, entityID string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	heartbeat := []byte(fmt.Sprintf(": heartbeat %s\n\n", time.Now().Format(time.RFC3339)))
	for clientChan := range h.clients[hubKey(entityType, entityID)] {
		select {
		case clientChan <- heartbeat:
		default:
		}
	}
}
