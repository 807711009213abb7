package models

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"
)

// Storage keys for the persisted collections. Values under these keys are
// whole JSON arrays; every mutation rewrites the full collection.
const (
	KeyEvents        = "admin_events"
	KeyServices      = "admin_services"
	KeyPortfolio     = "admin_portfolio"
	KeyClients       = "admin_clients"
	KeyInquiries     = "admin_inquiries"
	KeyNotifications = "admin_notifications"
	KeySession       = "adminToken"
	KeySidebar       = "admin-sidebar-collapsed"

	// BackupKeyPrefix prefixes snapshot keys: admin_backup_<epoch-ms>.
	BackupKeyPrefix = "admin_backup_"
)

// TimestampLayout is the lastUpdated/timestamp wire format (ISO-8601, UTC).
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Now returns the current time formatted for lastUpdated fields.
func Now() string {
	return time.Now().UTC().Format(TimestampLayout)
}

// NewID generates a collection-unique identifier: epoch milliseconds plus a
// random suffix. Uniqueness is probabilistic at creation time, not enforced.
func NewID() string {
	buf := make([]byte, 4)
	rand.Read(buf)
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "_" + hex.EncodeToString(buf)
}
