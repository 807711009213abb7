package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"decor-backend/internal/config"
	"decor-backend/internal/models"
	"decor-backend/internal/repositories"
	"decor-backend/internal/store"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// BackupRecord is one full snapshot of the six persisted collections.
type BackupRecord struct {
	CreatedAt     string                 `json:"createdAt"`
	Events        []models.Event         `json:"events"`
	Services      []models.Service       `json:"services"`
	Portfolio     []models.PortfolioItem `json:"portfolio"`
	Clients       []models.Client        `json:"clients"`
	Inquiries     []models.Inquiry       `json:"inquiries"`
	Notifications []models.Notification  `json:"notifications"`
}

// BackupInfo describes a stored backup without its payload.
type BackupInfo struct {
	Key       string `json:"key"`
	CreatedAt string `json:"createdAt"`
}

// BackupService snapshots and restores the whole store. It keeps the
// newest backups up to the retention count and prunes the rest; an S3
// bucket can mirror each snapshot for off-host recovery.
type BackupService struct {
	Store         *store.Store
	Events        *repositories.EventRepository
	Services      *repositories.ServiceRepository
	Portfolio     *repositories.PortfolioRepository
	Clients       *repositories.ClientRepository
	Inquiries     *repositories.InquiryRepository
	Notifications *repositories.NotificationRepository

	retention int
	interval  time.Duration
	s3Client  *s3.Client
	s3Bucket  string
	stopChan  chan struct{}
	wg        sync.WaitGroup
}

func NewBackupService(
	cfg *config.Config,
	st *store.Store,
	events *repositories.EventRepository,
	services *repositories.ServiceRepository,
	portfolio *repositories.PortfolioRepository,
	clients *repositories.ClientRepository,
	inquiries *repositories.InquiryRepository,
	notifications *repositories.NotificationRepository,
) *BackupService {
	retention := cfg.Backup.Retention
	if retention <= 0 {
		retention = 5
	}

	s := &BackupService{
		Store:         st,
		Events:        events,
		Services:      services,
		Portfolio:     portfolio,
		Clients:       clients,
		Inquiries:     inquiries,
		Notifications: notifications,
		retention:     retention,
		interval:      time.Duration(cfg.Backup.IntervalMinutes) * time.Minute,
		stopChan:      make(chan struct{}),
	}

	if cfg.Backup.S3Enabled {
		client, err := newS3Client(cfg)
		if err != nil {
			log.Printf("[Backup] S3 mirroring disabled: %v", err)
		} else {
			s.s3Client = client
			s.s3Bucket = cfg.Backup.S3Bucket
		}
	}
	return s
}

func newS3Client(cfg *config.Config) (*s3.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.Backup.S3AccessKey,
			cfg.Backup.S3SecretKey,
			"",
		)),
		awsconfig.WithRegion(cfg.Backup.S3Region),
	)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Backup.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Backup.S3Endpoint)
		}
	}), nil
}

// Create snapshots every collection under a timestamped key and prunes
// backups beyond the retention count, oldest first.
func (s *BackupService) Create(ctx context.Context) *BackupInfo {
	record := &BackupRecord{
		CreatedAt:     models.Now(),
		Events:        s.Events.List(ctx),
		Services:      s.Services.List(ctx),
		Portfolio:     s.Portfolio.List(ctx),
		Clients:       s.Clients.List(ctx),
		Inquiries:     s.Inquiries.List(ctx),
		Notifications: s.Notifications.List(ctx),
	}

	key := models.BackupKeyPrefix + strconv.FormatInt(time.Now().UnixMilli(), 10)
	s.Store.Write(ctx, key, record)
	s.prune(ctx)
	s.mirror(ctx, key, record)

	log.Printf("[Backup] Created backup %s", key)
	return &BackupInfo{Key: key, CreatedAt: record.CreatedAt}
}

// List returns stored backups, newest first.
func (s *BackupService) List(ctx context.Context) []BackupInfo {
	keys := s.backupKeys(ctx)
	infos := make([]BackupInfo, 0, len(keys))
	for i := len(keys) - 1; i >= 0; i-- {
		var record BackupRecord
		info := BackupInfo{Key: keys[i]}
		if s.Store.Read(ctx, keys[i], &record) {
			info.CreatedAt = record.CreatedAt
		}
		infos = append(infos, info)
	}
	return infos
}

// Restore rewrites every collection from the named backup.
func (s *BackupService) Restore(ctx context.Context, key string) error {
	var record BackupRecord
	if !strings.HasPrefix(key, models.BackupKeyPrefix) || !s.Store.Read(ctx, key, &record) {
		return fmt.Errorf("backup %s not found", key)
	}

	s.Events.ReplaceAll(ctx, record.Events)
	s.Services.ReplaceAll(ctx, record.Services)
	s.Portfolio.ReplaceAll(ctx, record.Portfolio)
	s.Clients.ReplaceAll(ctx, record.Clients)
	s.Inquiries.ReplaceAll(ctx, record.Inquiries)
	notifications := record.Notifications
	if notifications == nil {
		notifications = []models.Notification{}
	}
	s.Store.Write(ctx, models.KeyNotifications, notifications)

	log.Printf("[Backup] Restored backup %s", key)
	return nil
}

// Delete removes one backup. Unknown keys are a no-op.
func (s *BackupService) Delete(ctx context.Context, key string) {
	if strings.HasPrefix(key, models.BackupKeyPrefix) {
		s.Store.Clear(ctx, key)
	}
}

// backupKeys returns backup keys sorted oldest first by their embedded
// timestamp. Keys with an unparseable suffix sort first so they are the
// first pruned.
func (s *BackupService) backupKeys(ctx context.Context) []string {
	keys := s.Store.Keys(ctx, models.BackupKeyPrefix)
	sort.SliceStable(keys, func(i, j int) bool {
		return backupStamp(keys[i]) < backupStamp(keys[j])
	})
	return keys
}

func backupStamp(key string) int64 {
	n, err := strconv.ParseInt(strings.TrimPrefix(key, models.BackupKeyPrefix), 10, 64)
	if err != nil {
		return -1
	}
	return n
}

func (s *BackupService) prune(ctx context.Context) {
	keys := s.backupKeys(ctx)
	for len(keys) > s.retention {
		s.Store.Clear(ctx, keys[0])
		log.Printf("[Backup] Pruned old backup %s", keys[0])
		keys = keys[1:]
	}
}

func (s *BackupService) mirror(ctx context.Context, key string, record *BackupRecord) {
	if s.s3Client == nil {
		return
	}
	data, err := json.Marshal(record)
	if err != nil {
		log.Printf("[Backup] Failed to encode backup %s for S3: %v", key, err)
		return
	}
	_, err = s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Bucket),
		Key:         aws.String("backups/" + key + ".json"),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		log.Printf("[Backup] Failed to mirror backup %s to S3: %v", key, err)
		return
	}
	log.Printf("[Backup] Mirrored backup %s to S3", key)
}

// Start runs scheduled backups when an interval is configured. A zero
// interval means manual backups only.
func (s *BackupService) Start() {
	if s.interval <= 0 {
		return
	}
	log.Println("[Backup] Starting backup scheduler...")

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.Create(context.Background())
			case <-s.stopChan:
				log.Println("[Backup] Stopping backup scheduler...")
				return
			}
		}
	}()
}

func (s *BackupService) Stop() {
	close(s.stopChan)
	s.wg.Wait()
}
