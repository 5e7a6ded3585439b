package kds

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/yeremiapane/gourmet-pos/models"
)

// Event types
const (
	EventOrderUpdate    = "order_update"
	EventKitchenUpdate  = "kitchen_update"
	EventStockUpdate    = "stock_update"
	EventPOUpdate       = "purchase_order_update"
	EventStaffNotif     = "staff_notification"
	EventDashboardEvent = "dashboard_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub menampung semua client terhubung (KDS dapur, dashboard, kasir) dan
// menyiarkan event perubahan data ke semuanya. Engine memanggil Broadcast*
// hanya setelah datanya commit, jadi observer yang refetch selalu melihat
// data yang durable.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient -> menambahkan connection ke set dengan role
func RegisterClient(conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = role
}

// UnregisterClient -> melepaskan connection
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastOrderUpdate -> order baru atau berubah (dipakai KDS dan kasir)
func BroadcastOrderUpdate(order models.Order) {
	broadcast(Message{
		Event: EventOrderUpdate,
		Data:  order,
	})
}

// BroadcastKitchenUpdate -> perubahan status dapur untuk chef
func BroadcastKitchenUpdate(order models.Order) {
	broadcast(Message{
		Event: EventKitchenUpdate,
		Data:  order,
	})
}

// BroadcastStockUpdate -> stok bahan berubah (reservasi atau penerimaan)
func BroadcastStockUpdate(ingredient models.Ingredient) {
	broadcast(Message{
		Event: EventStockUpdate,
		Data:  ingredient,
	})
}

// BroadcastPurchaseOrderUpdate -> status PO berubah
func BroadcastPurchaseOrderUpdate(po models.PurchaseOrder) {
	broadcast(Message{
		Event: EventPOUpdate,
		Data:  po,
	})
}

// BroadcastStaffNotification -> notifikasi teks untuk staff
func BroadcastStaffNotification(message string) {
	broadcast(Message{
		Event: EventStaffNotif,
		Data:  message,
	})
}

// BroadcastDashboardUpdate -> hint refetch untuk dashboard
func BroadcastDashboardUpdate(data interface{}) {
	broadcast(Message{
		Event: EventDashboardEvent,
		Data:  data,
	})
}

// broadcast -> fungsi internal untuk mengirim pesan
func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("Error sending message to client: %v", err)
			continue
		}
	}
}
