// @title Jadebook API
// @description API for personal journaling app "Jadebook"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/jadebook/jadebook/internal/api"
	"github.com/jadebook/jadebook/internal/repository"
	"github.com/jadebook/jadebook/internal/service"
	"github.com/jadebook/jadebook/pkg/cleanup"
	"github.com/jadebook/jadebook/pkg/config"
	jwtservice "github.com/jadebook/jadebook/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	usersRepo := repository.NewUsersRepo(&dbCfg)
	entriesRepo := repository.NewEntriesRepo(&dbCfg)
	goalsRepo := repository.NewGoalsRepo(&dbCfg)
	logsRepo := repository.NewGoalLogsRepo(&dbCfg)

	serv := api.New(&api.ServicesList{
		UserService:    service.NewUserService(usersRepo),
		EntriesService: service.NewEntriesService(entriesRepo),
		GoalsService:   service.NewGoalsService(goalsRepo, logsRepo),
		StreakTracker:  service.NewStreakTracker(usersRepo),
		ExportService:  service.NewExportService(usersRepo, entriesRepo, goalsRepo, logsRepo),
		JwtService:     jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	defer cleanup.CleanUp()
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
