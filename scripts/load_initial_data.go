package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gamejam-portal-backend/internal/config"
	"gamejam-portal-backend/internal/database"
	"gamejam-portal-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TeamData struct {
	Name       string `yaml:"name"`
	Mode       string `yaml:"mode"`
	InviteCode string `yaml:"invite_code,omitempty"`
}

type UserData struct {
	Name        string `yaml:"name"`
	Email       string `yaml:"email"`
	Phone       string `yaml:"phone,omitempty"`
	Age         int    `yaml:"age"`
	ProfileRole string `yaml:"profile_role"`
	TeamName    string `yaml:"team_name,omitempty"`
	Leader      bool   `yaml:"leader,omitempty"`
	// Password is optional; users without one stay unactivated
	Password string `yaml:"password,omitempty"`
}

type AnnouncementData struct {
	Title  string `yaml:"title"`
	Body   string `yaml:"body"`
	Pinned bool   `yaml:"pinned"`
}

// File structures
type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type AnnouncementsFile struct {
	Announcements []AnnouncementData `yaml:"announcements"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data", cfg.AdminEmailList()); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string, adminEmails []string) error {
	var teamsFiles []TeamsFile
	if err := loadYAML(dataDir, "teams", &teamsFiles); err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}
	var usersFiles []UsersFile
	if err := loadYAML(dataDir, "users", &usersFiles); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	var announcementFiles []AnnouncementsFile
	if err := loadYAML(dataDir, "announcements", &announcementFiles); err != nil {
		return fmt.Errorf("failed to load announcements: %w", err)
	}

	// Create teams first
	teamMap := make(map[string]*models.Team)
	teamCreated, teamTotal := 0, 0
	for _, f := range teamsFiles {
		for _, teamData := range f.Teams {
			team, created, err := createTeam(db, teamData)
			if err != nil {
				return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
			}
			teamMap[teamData.Name] = team
			teamTotal++
			if created {
				teamCreated++
			}
		}
	}
	log.Printf("📋 Teams: %d created, %d total", teamCreated, teamTotal)

	admins := make(map[string]bool, len(adminEmails))
	for _, e := range adminEmails {
		admins[e] = true
	}

	userCreated, userTotal := 0, 0
	for _, f := range usersFiles {
		for _, userData := range f.Users {
			created, err := createUser(db, userData, teamMap, admins)
			if err != nil {
				return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
			}
			userTotal++
			if created {
				userCreated++
			}
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, userTotal)

	announcementCreated, announcementTotal := 0, 0
	for _, f := range announcementFiles {
		for _, a := range f.Announcements {
			created, err := createAnnouncement(db, a)
			if err != nil {
				log.Printf("⚠️  Warning: failed to create announcement %q: %v", a.Title, err)
				continue
			}
			announcementTotal++
			if created {
				announcementCreated++
			}
		}
	}
	log.Printf("📋 Announcements: %d created, %d total", announcementCreated, announcementTotal)

	return nil
}

// loadYAML decodes every .yaml file under dataDir whose path contains kind
func loadYAML[T any](dataDir, kind string, out *[]T) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file T
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		*out = append(*out, file)
		return nil
	})
}

func createTeam(db *gorm.DB, teamData TeamData) (*models.Team, bool, error) {
	var team models.Team
	err := db.Where("name = ?", teamData.Name).First(&team).Error
	if err == nil {
		return &team, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query team: %w", err)
	}

	mode := models.TeamTypeTeam
	if teamData.Mode != "" {
		mode = models.TeamType(teamData.Mode)
	}
	team = models.Team{Name: teamData.Name, Mode: mode}
	if teamData.InviteCode != "" {
		code := strings.ToUpper(teamData.InviteCode)
		team.InviteCode = &code
	}

	if err := db.Create(&team).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create team: %w", err)
	}
	return &team, true, nil
}

func createUser(db *gorm.DB, userData UserData, teamMap map[string]*models.Team, admins map[string]bool) (bool, error) {
	email := strings.ToLower(strings.TrimSpace(userData.Email))
	isAdmin := admins[email]

	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		// keep the organiser flag in step with ADMIN_EMAILS on every run
		if user.IsAdmin != isAdmin {
			return false, db.Model(&user).Update("is_admin", isAdmin).Error
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query user: %w", err)
	}

	role := models.ProfileRoleDeveloper
	if userData.ProfileRole != "" {
		role = models.ProfileRole(userData.ProfileRole)
	}
	user = models.User{
		Email:       email,
		Name:        userData.Name,
		Phone:       userData.Phone,
		Age:         userData.Age,
		ProfileRole: role,
		Source:      models.UserSourceAdmin,
		IsAdmin:     isAdmin,
	}

	if userData.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(userData.Password), bcrypt.DefaultCost)
		if err != nil {
			return false, fmt.Errorf("failed to hash password: %w", err)
		}
		h := string(hash)
		user.PasswordHash = &h
		user.CanLogin = true
	}

	var team *models.Team
	if userData.TeamName != "" {
		team = teamMap[userData.TeamName]
		if team == nil {
			return false, fmt.Errorf("team %s not found for user %s", userData.TeamName, email)
		}
		user.TeamID = &team.ID
	}

	return true, db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		if team != nil && userData.Leader && team.LeaderID == nil {
			team.LeaderID = &user.ID
			if err := tx.Model(team).Update("leader_id", user.ID).Error; err != nil {
				return fmt.Errorf("failed to set leader: %w", err)
			}
		}
		return nil
	})
}

func createAnnouncement(db *gorm.DB, a AnnouncementData) (bool, error) {
	var existing models.Announcement
	err := db.Where("title = ?", a.Title).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	ann := models.Announcement{
		Title:       a.Title,
		Body:        a.Body,
		Pinned:      a.Pinned,
		PublishedAt: time.Now(),
	}
	return true, db.Create(&ann).Error
}
