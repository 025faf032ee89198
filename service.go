// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/velora-app/velora-api/client"
	"github.com/velora-app/velora-api/controller"
	"github.com/velora-app/velora-api/db"
	"github.com/velora-app/velora-api/i18n"
	"github.com/velora-app/velora-api/repository"
	"github.com/velora-app/velora-api/security"
	"github.com/velora-app/velora-api/service"
)

func init() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("Failed to load .env file: %v", err)
	}

	readyChan := make(chan bool)
	systemInfoService, err := service.NewSystemInfoService()
	if err != nil {
		panic(err)
	}
	if level, err := log.ParseLevel(systemInfoService.GetLogLevel()); err == nil {
		log.SetLevel(level)
	} else {
		log.Warnf("Unknown log level %q, keeping %s", systemInfoService.GetLogLevel(), log.GetLevel())
	}
	i18n.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cp := db.NewConnectionProvider(systemInfoService.GetCredsFromEnv())
	if err = db.CreateSchema(ctx, cp); err != nil {
		log.Fatalf("Failed to prepare database schema: %v", err)
	}

	olricProvider, err := client.NewOlricProvider(systemInfoService.GetOlricConfig())
	if err != nil {
		log.Fatalf("Failed to create olric provider: %v", err)
	}

	userRepository := repository.NewUserRepository(cp)
	taskRepository := repository.NewTaskRepository(cp)
	vaultEntryRepository := repository.NewVaultEntryRepository(cp)
	reminderRepository := repository.NewReminderRepository(cp)

	strengthService, err := service.NewStrengthService(systemInfoService.GetStrengthPolicy())
	if err != nil {
		log.Fatalf("Failed to create strength service: %v", err)
	}
	revocationStore := service.NewOlricRevocationStore(olricProvider)
	tokenService, err := service.NewTokenService(systemInfoService.GetJwtSecret(), systemInfoService.GetTokenTTL(), revocationStore)
	if err != nil {
		log.Fatalf("Failed to create token service: %v", err)
	}
	userService := service.NewUserService(userRepository)
	authorizationService := service.NewAuthorizationService()
	taskService := service.NewTaskService(taskRepository)
	vaultService := service.NewVaultService(vaultEntryRepository, strengthService)
	reminderService := service.NewReminderService(reminderRepository)
	cleanupService := service.NewCleanupService(cp)

	notificationClient := client.NewNotificationClient(systemInfoService.GetReminderWebhookUrl(), systemInfoService.InsecureSkipVerify())
	reminderDispatcher := service.NewReminderDispatcher(reminderRepository, notificationClient, systemInfoService.GetExecutorId(), systemInfoService.GetReminderPollInterval())
	reminderDispatcher.Start(ctx)

	if err = security.SetupGoGuardian(tokenService, userService); err != nil {
		log.Fatalf("Failed to setup go-guardian: %v", err)
	}

	authController := controller.NewAuthController(userService, tokenService, systemInfoService.IsProductionMode())
	taskController := controller.NewTaskController(taskService, authorizationService)
	passwordController := controller.NewPasswordController(vaultService, authorizationService)
	reminderController := controller.NewReminderController(reminderService, authorizationService)
	strengthController := controller.NewStrengthController(strengthService)
	cleanupController := controller.NewCleanupController(cleanupService, authorizationService, tokenService)
	healthController := controller.NewHealthController(readyChan)

	router := mux.NewRouter()
	router.HandleFunc("/auth/register", security.NoSecure(authController.Register)).Methods(http.MethodPost)
	router.HandleFunc("/auth/login", security.NoSecure(authController.Login)).Methods(http.MethodPost)
	router.HandleFunc("/auth/logout", security.Secure(authController.Logout)).Methods(http.MethodPost)
	router.HandleFunc("/api/me", security.Secure(authController.GetCurrentUser)).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{userId}", security.Secure(cleanupController.DeleteAccount)).Methods(http.MethodDelete)

	router.HandleFunc("/api/strength", security.NoSecure(strengthController.EvaluatePassword)).Methods(http.MethodPost)

	router.HandleFunc("/api/tasks/{userId}", security.Secure(taskController.CreateTask)).Methods(http.MethodPost)
	router.HandleFunc("/api/tasks/{userId}", security.Secure(taskController.ListTasks)).Methods(http.MethodGet)
	router.HandleFunc("/api/tasks/{userId}/{taskId}", security.Secure(taskController.GetTask)).Methods(http.MethodGet)
	router.HandleFunc("/api/tasks/{userId}/{taskId}", security.Secure(taskController.UpdateTask)).Methods(http.MethodPatch)
	router.HandleFunc("/api/tasks/{userId}/{taskId}", security.Secure(taskController.DeleteTask)).Methods(http.MethodDelete)

	router.HandleFunc("/api/passwords/{userId}", security.Secure(passwordController.AddEntry)).Methods(http.MethodPost)
	router.HandleFunc("/api/passwords/{userId}", security.Secure(passwordController.ListEntries)).Methods(http.MethodGet)
	router.HandleFunc("/api/passwords/{userId}/{entryId}", security.Secure(passwordController.GetEntry)).Methods(http.MethodGet)
	router.HandleFunc("/api/passwords/{userId}/{entryId}", security.Secure(passwordController.UpdateEntry)).Methods(http.MethodPut)
	router.HandleFunc("/api/passwords/{userId}/{entryId}", security.Secure(passwordController.DeleteEntry)).Methods(http.MethodDelete)

	router.HandleFunc("/api/reminders/{userId}", security.Secure(reminderController.CreateReminder)).Methods(http.MethodPost)
	router.HandleFunc("/api/reminders/{userId}", security.Secure(reminderController.ListReminders)).Methods(http.MethodGet)
	router.HandleFunc("/api/reminders/{userId}/{reminderId}", security.Secure(reminderController.DeleteReminder)).Methods(http.MethodDelete)

	router.HandleFunc("/live", healthController.HandleLiveRequest).Methods(http.MethodGet)
	router.HandleFunc("/ready", healthController.HandleReadyRequest).Methods(http.MethodGet)
	readyChan <- true
	close(readyChan)

	debug.SetGCPercent(30)

	srv := makeServer(systemInfoService, router)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("%v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("HTTP server shutdown failed: %v", err)
	}
	if err := olricProvider.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Olric shutdown failed: %v", err)
	}
	if err := cp.GetConnection().Close(); err != nil {
		log.Errorf("Failed to close database connection: %v", err)
	}
}

func makeServer(systemInfoService service.SystemInfoService, r *mux.Router) *http.Server {
	listenAddr := systemInfoService.GetListenAddress()

	log.Infof("Listen addr = %s", listenAddr)

	var corsOptions []handlers.CORSOption

	corsOptions = append(corsOptions, handlers.AllowedHeaders([]string{"Connection", "Accept-Encoding", "Accept-Language", "Content-Encoding", "X-Requested-With", "Content-Type", "Authorization"}))

	allowedOrigin := systemInfoService.GetOriginAllowed()
	if allowedOrigin != "" {
		corsOptions = append(corsOptions, handlers.AllowedOrigins([]string{allowedOrigin}))
		corsOptions = append(corsOptions, handlers.AllowCredentials())
	}
	corsOptions = append(corsOptions, handlers.AllowedMethods([]string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}))

	return &http.Server{
		Handler:      handlers.CompressHandler(handlers.CORS(corsOptions...)(r)),
		Addr:         listenAddr,
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  60 * time.Second,
	}
}
