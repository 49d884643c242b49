package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"vidtube/pkg/config"
	"vidtube/pkg/database"
	"vidtube/pkg/logger"
	"vidtube/pkg/models"
	"vidtube/pkg/s3"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const placeholderThumbnail = "https://cataas.com/cat"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}

	// Thumbnails are mirrored to S3 when it is reachable, otherwise linked directly
	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Warn("Failed to create S3 client: %v (using remote thumbnails)", err)
		s3Client = nil
	}

	if err := seedDatabase(db, s3Client, log); err != nil {
		log.Fatal("Failed to seed database: %v", err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, s3Client *s3.Client, log *logger.Logger) error {
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	testUsers := []struct {
		email    string
		username string
		fullName string
		password string
	}{
		{"alice@test.com", "alice", "Alice Archer", "password123"},
		{"bob@test.com", "bob", "Bob Baker", "password123"},
		{"charlie@test.com", "charlie", "Charlie Chen", "password123"},
		{"diana@test.com", "diana", "Diana Diaz", "password123"},
	}

	userIDs := make([]string, 0, len(testUsers))
	videoIDs := make([]string, 0)

	for _, userData := range testUsers {
		var existing models.User
		if err := db.Where("email = ? OR username = ?", userData.email, userData.username).First(&existing).Error; err == nil {
			log.Info("User %s already exists, skipping", existing.Username)
			userIDs = append(userIDs, existing.ID)
			continue
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(userData.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		user := &models.User{
			Email:    userData.email,
			Username: userData.username,
			FullName: userData.fullName,
			Password: string(hashedPassword),
		}
		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", user.Username, err)
			continue
		}
		log.Info("Created user: %s (%s)", user.Username, user.Email)
		userIDs = append(userIDs, user.ID)

		videosCount := 2 + len(userIDs)%2
		for i := 0; i < videosCount; i++ {
			video, err := createVideo(db, s3Client, httpClient, user, i, log)
			if err != nil {
				log.Error("Failed to create video %d for user %s: %v", i+1, user.Username, err)
				continue
			}
			videoIDs = append(videoIDs, video.ID)
		}

		tweet := &models.Tweet{
			OwnerID: user.ID,
			Content: fmt.Sprintf("Hello from %s!", user.Username),
		}
		if err := db.Create(tweet).Error; err != nil {
			log.Error("Failed to create tweet for %s: %v", user.Username, err)
		}
	}

	// Everyone subscribes to every later channel and likes and comments on
	// the first video they do not own.
	for i, subscriberID := range userIDs {
		for _, channelID := range userIDs[i+1:] {
			edge := &models.Subscription{SubscriberID: subscriberID, ChannelID: channelID}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(edge).Error; err != nil {
				log.Error("Failed to create subscription: %v", err)
			}
		}

		for _, videoID := range videoIDs {
			var video models.Video
			if err := db.Select("owner_id").First(&video, "id = ?", videoID).Error; err != nil || video.OwnerID == subscriberID {
				continue
			}

			like := &models.Like{LikedBy: subscriberID, TargetKind: models.LikeTargetVideo, TargetID: videoID}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error; err != nil {
				log.Error("Failed to create like: %v", err)
			}

			comment := &models.Comment{VideoID: videoID, OwnerID: subscriberID, Content: "Great video!"}
			if err := db.Create(comment).Error; err != nil {
				log.Error("Failed to create comment: %v", err)
			}
			break
		}
	}

	log.Info("Created %d users, %d videos, subscriptions, likes and comments", len(userIDs), len(videoIDs))
	return nil
}

func createVideo(db *gorm.DB, s3Client *s3.Client, httpClient *http.Client, user *models.User, index int, log *logger.Logger) (*models.Video, error) {
	thumbnailURL := placeholderThumbnail
	if s3Client != nil {
		url, err := mirrorThumbnail(s3Client, httpClient, user, index)
		if err != nil {
			log.Warn("Failed to mirror thumbnail for %s: %v", user.Username, err)
		} else {
			thumbnailURL = url
		}
	}

	video := &models.Video{
		OwnerID:     user.ID,
		Title:       fmt.Sprintf("Video #%d by %s", index+1, user.Username),
		Description: fmt.Sprintf("Seeded demo video #%d", index+1),
		VideoFile:   "https://samplelib.com/lib/preview/mp4/sample-5s.mp4",
		Thumbnail:   thumbnailURL,
		Duration:    5,
		Views:       int64(10 * (index + 1)),
		// A third video, when present, stays a draft
		IsPublished: index < 2,
	}
	if err := db.Create(video).Error; err != nil {
		return nil, fmt.Errorf("failed to create video: %w", err)
	}

	log.Info("Created video: %s", video.Title)
	return video, nil
}

func mirrorThumbnail(s3Client *s3.Client, httpClient *http.Client, user *models.User, index int) (string, error) {
	resp, err := httpClient.Get(fmt.Sprintf("%s/says/%s", placeholderThumbnail, user.Username))
	if err != nil {
		return "", fmt.Errorf("failed to fetch thumbnail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cataas API returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read thumbnail: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("received empty thumbnail")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	key := fmt.Sprintf("thumbnails/%s/seed_%d.jpg", user.ID, index)
	return s3Client.UploadFile(ctx, key, bytes.NewReader(data), "image/jpeg")
}
