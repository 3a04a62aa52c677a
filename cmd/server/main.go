package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tanmaypatil/graph-db/internal/graph"
	"github.com/tanmaypatil/graph-db/pkg/config"
	apperrors "github.com/tanmaypatil/graph-db/pkg/errors"
	"github.com/tanmaypatil/graph-db/pkg/logger"
)

func main() {
	// Initialize logger
	if err := logger.Init(os.Getenv("ENV")); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting graph API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize the in-memory graph
	store := graph.NewStore()
	repo := graph.NewRepository(store)

	if cfg.SeedSample {
		if err := graph.LoadSampleData(store); err != nil {
			log.Fatal("Failed to load sample data", zap.Error(err))
		}
		log.Info("Sample data loaded")
	}

	// Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := setupRouter(repo, log)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started", zap.String("port", cfg.Port))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}

// server wraps the repository with the mutual exclusion the store contract
// requires when one instance is shared across request goroutines: writers
// take the write lock, queries take the read lock.
type server struct {
	mu   sync.RWMutex
	repo *graph.Repository
	log  *zap.Logger
}

func setupRouter(repo *graph.Repository, log *zap.Logger) *gin.Engine {
	s := &server{repo: repo, log: log}

	router := gin.New()
	router.Use(ginLogger(log))
	router.Use(gin.Recovery())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.POST("/developers", s.createDeveloper)
		api.POST("/defects", s.createDefect)
		api.POST("/skills", s.createSkill)
		api.POST("/teams", s.createTeam)
		api.POST("/assignments/skill", s.assignSkill)
		api.POST("/assignments/defect", s.assignDefect)
		api.POST("/assignments/team", s.assignTeam)
		api.POST("/clear", s.clear)

		api.GET("/teams/:name/developers", s.developersByTeam)
		api.GET("/teams/:name/skills", s.skillsInTeam)
		api.GET("/teams/:name/summary", s.teamSummary)
		api.GET("/developers/:name/defects", s.defectsByDeveloper)
		api.GET("/defect-counts", s.defectCounts)
		api.GET("/defects/:id/skills", s.skillsForDefect)
		api.POST("/defects/:id/recommendations", s.recommendations)
	}

	return router
}

func (s *server) createDeveloper(c *gin.Context) {
	var req struct {
		ID     string `json:"id"`
		Name   string `json:"name" binding:"required"`
		TeamID string `json:"team_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	s.mu.Lock()
	err := s.repo.Store().CreateDeveloper(graph.Developer{ID: req.ID, Name: req.Name, TeamID: req.TeamID})
	s.mu.Unlock()
	if err != nil {
		s.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": req.ID})
}

func (s *server) createDefect(c *gin.Context) {
	var req struct {
		ID       string `json:"id"`
		Title    string `json:"title" binding:"required"`
		Severity string `json:"severity" binding:"required"`
		Status   string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	s.mu.Lock()
	err := s.repo.Store().CreateDefect(graph.Defect{
		ID:       req.ID,
		Title:    req.Title,
		Severity: graph.Severity(req.Severity),
		Status:   graph.Status(req.Status),
	})
	s.mu.Unlock()
	if err != nil {
		s.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": req.ID})
}

func (s *server) createSkill(c *gin.Context) {
	var req struct {
		ID    string `json:"id"`
		Name  string `json:"name" binding:"required"`
		Level string `json:"level" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	s.mu.Lock()
	err := s.repo.Store().CreateSkill(graph.Skill{ID: req.ID, Name: req.Name, Level: graph.Level(req.Level)})
	s.mu.Unlock()
	if err != nil {
		s.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": req.ID})
}

func (s *server) createTeam(c *gin.Context) {
	var req struct {
		ID       string `json:"id"`
		Name     string `json:"name" binding:"required"`
		Location string `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	s.mu.Lock()
	err := s.repo.Store().CreateTeam(graph.Team{ID: req.ID, Name: req.Name, Location: req.Location})
	s.mu.Unlock()
	if err != nil {
		s.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": req.ID})
}

func (s *server) assignSkill(c *gin.Context) {
	var req struct {
		DeveloperID string `json:"developer_id" binding:"required"`
		SkillID     string `json:"skill_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	err := s.repo.Store().AssignSkillToDeveloper(req.DeveloperID, req.SkillID)
	s.mu.Unlock()
	if err != nil {
		s.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "assigned"})
}

func (s *server) assignDefect(c *gin.Context) {
	var req struct {
		DefectID    string `json:"defect_id" binding:"required"`
		DeveloperID string `json:"developer_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	err := s.repo.Store().AssignDefectToDeveloper(req.DefectID, req.DeveloperID)
	s.mu.Unlock()
	if err != nil {
		s.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "assigned"})
}

func (s *server) assignTeam(c *gin.Context) {
	var req struct {
		DeveloperID string `json:"developer_id" binding:"required"`
		TeamID      string `json:"team_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	err := s.repo.Store().AssignDeveloperToTeam(req.DeveloperID, req.TeamID)
	s.mu.Unlock()
	if err != nil {
		s.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "assigned"})
}

func (s *server) clear(c *gin.Context) {
	s.mu.Lock()
	s.repo.Store().Clear()
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

func (s *server) developersByTeam(c *gin.Context) {
	s.mu.RLock()
	developers := s.repo.FindDevelopersByTeam(c.Param("name"))
	s.mu.RUnlock()
	c.JSON(http.StatusOK, gin.H{"developers": developers})
}

func (s *server) skillsInTeam(c *gin.Context) {
	s.mu.RLock()
	skills := s.repo.FindAllSkillsInTeam(c.Param("name"))
	s.mu.RUnlock()
	c.JSON(http.StatusOK, gin.H{"skills": skills})
}

// teamSummary fans out the two independent team queries concurrently; both
// are reads under the same read lock, which the store permits.
func (s *server) teamSummary(c *gin.Context) {
	teamName := c.Param("name")

	s.mu.RLock()
	defer s.mu.RUnlock()

	var developers []graph.Developer
	var skills []string

	g, _ := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		developers = s.repo.FindDevelopersByTeam(teamName)
		return nil
	})
	g.Go(func() error {
		skills = s.repo.FindAllSkillsInTeam(teamName)
		return nil
	})
	if err := g.Wait(); err != nil {
		s.log.Error("Failed to build team summary", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"team":       teamName,
		"developers": developers,
		"skills":     skills,
	})
}

func (s *server) defectsByDeveloper(c *gin.Context) {
	s.mu.RLock()
	defects := s.repo.FindDefectsAssignedToDeveloper(c.Param("name"))
	s.mu.RUnlock()
	c.JSON(http.StatusOK, gin.H{"defects": defects})
}

func (s *server) defectCounts(c *gin.Context) {
	s.mu.RLock()
	counts := s.repo.FindDevelopersWithMostDefects()
	s.mu.RUnlock()
	c.JSON(http.StatusOK, gin.H{"counts": counts})
}

func (s *server) skillsForDefect(c *gin.Context) {
	s.mu.RLock()
	skills := s.repo.FindSkillsOfDevelopersWorkingOnDefect(c.Param("id"))
	s.mu.RUnlock()
	c.JSON(http.StatusOK, gin.H{"skills": skills})
}

func (s *server) recommendations(c *gin.Context) {
	var req struct {
		RequiredSkills []string `json:"required_skills"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.RLock()
	recs, err := s.repo.RecommendDevelopersWithDetails(c.Param("id"), req.RequiredSkills)
	s.mu.RUnlock()
	if err != nil {
		var notFound *apperrors.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Defect not found"})
			return
		}
		s.log.Error("Failed to build recommendations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build recommendations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

func (s *server) writeStoreError(c *gin.Context, err error) {
	var dup *apperrors.DuplicateIDError
	var dangling *apperrors.DanglingReferenceError
	var invalid *apperrors.InvalidArgumentError
	switch {
	case errors.As(err, &dup):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &dangling):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		s.log.Error("Store mutation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}

// ginLogger is a custom logger middleware for Gin
func ginLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		log.Info("HTTP Request",
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
		)
	}
}
