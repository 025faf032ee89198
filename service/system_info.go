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

package service

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/velora-app/velora-api/client"
	"github.com/velora-app/velora-api/db"
)

const (
	LISTEN_ADDRESS         = "LISTEN_ADDRESS"
	ORIGIN_ALLOWED         = "ORIGIN_ALLOWED"
	LOG_LEVEL              = "LOG_LEVEL"
	PRODUCTION_MODE        = "PRODUCTION_MODE"
	PG_HOST                = "PG_HOST"
	PG_PORT                = "PG_PORT"
	PG_DB                  = "PG_DB"
	PG_USER                = "PG_USER"
	PG_PASSWORD            = "PG_PASSWORD"
	PG_SSL_MODE            = "PG_SSL_MODE"
	JWT_SECRET             = "JWT_SECRET"
	TOKEN_TTL              = "TOKEN_TTL"
	OLRIC_DISCOVERY_MODE   = "OLRIC_DISCOVERY_MODE"
	OLRIC_REPLICA_COUNT    = "OLRIC_REPLICA_COUNT"
	OLRIC_PEERS            = "OLRIC_PEERS"
	NAMESPACE              = "NAMESPACE"
	REMINDER_WEBHOOK_URL   = "REMINDER_WEBHOOK_URL"
	REMINDER_POLL_INTERVAL = "REMINDER_POLL_INTERVAL"
	STRENGTH_POLICY        = "STRENGTH_POLICY"
	INSECURE_SKIP_VERIFY   = "INSECURE_SKIP_VERIFY"
	EXECUTOR_ID            = "EXECUTOR_ID"
)

const devJwtSecret = "velora-dev-secret-change-me"

type SystemInfoService interface {
	Init() error
	GetListenAddress() string
	GetOriginAllowed() string
	GetLogLevel() string
	IsProductionMode() bool
	GetCredsFromEnv() db.DbCredentials
	GetJwtSecret() []byte
	GetTokenTTL() time.Duration
	GetOlricConfig() client.OlricConfig
	GetReminderWebhookUrl() string
	GetReminderPollInterval() time.Duration
	GetStrengthPolicy() string
	InsecureSkipVerify() bool
	GetExecutorId() string
}

func NewSystemInfoService() (SystemInfoService, error) {
	s := &systemInfoServiceImpl{
		systemInfoMap: make(map[string]interface{})}
	if err := s.Init(); err != nil {
		log.Error("Failed to read system info: " + err.Error())
		return nil, err
	}
	return s, nil
}

type systemInfoServiceImpl struct {
	systemInfoMap map[string]interface{}
}

func (g systemInfoServiceImpl) Init() error {
	g.setListenAddress()
	g.setOriginAllowed()
	g.setLogLevel()
	g.setProductionMode()
	if err := g.setDbCredentials(); err != nil {
		return err
	}
	if err := g.setJwtSecret(); err != nil {
		return err
	}
	if err := g.setTokenTTL(); err != nil {
		return err
	}
	if err := g.setOlricConfig(); err != nil {
		return err
	}
	g.setReminderWebhookUrl()
	if err := g.setReminderPollInterval(); err != nil {
		return err
	}
	g.setStrengthPolicy()
	g.setInsecureSkipVerify()
	g.setExecutorId()

	return nil
}

func (g systemInfoServiceImpl) setListenAddress() {
	listenAddr := os.Getenv(LISTEN_ADDRESS)
	if listenAddr == "" {
		listenAddr = ":8080"
	}
	g.systemInfoMap[LISTEN_ADDRESS] = listenAddr
}

func (g systemInfoServiceImpl) GetListenAddress() string {
	return g.systemInfoMap[LISTEN_ADDRESS].(string)
}

func (g systemInfoServiceImpl) setOriginAllowed() {
	g.systemInfoMap[ORIGIN_ALLOWED] = os.Getenv(ORIGIN_ALLOWED)
}

func (g systemInfoServiceImpl) GetOriginAllowed() string {
	return g.systemInfoMap[ORIGIN_ALLOWED].(string)
}

func (g systemInfoServiceImpl) setLogLevel() {
	logLevel := os.Getenv(LOG_LEVEL)
	if logLevel == "" {
		logLevel = "info"
	}
	g.systemInfoMap[LOG_LEVEL] = logLevel
}

func (g systemInfoServiceImpl) GetLogLevel() string {
	return g.systemInfoMap[LOG_LEVEL].(string)
}

func (g systemInfoServiceImpl) setProductionMode() {
	g.systemInfoMap[PRODUCTION_MODE] = getBoolEnv(PRODUCTION_MODE)
}

func (g systemInfoServiceImpl) IsProductionMode() bool {
	return g.systemInfoMap[PRODUCTION_MODE].(bool)
}

func (g systemInfoServiceImpl) setDbCredentials() error {
	host := os.Getenv(PG_HOST)
	if host == "" {
		host = "localhost"
	}
	port := 5432
	if portStr := os.Getenv(PG_PORT); portStr != "" {
		var err error
		port, err = strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("failed to parse %v env value: %w", PG_PORT, err)
		}
	}
	database := os.Getenv(PG_DB)
	if database == "" {
		database = "velora"
	}
	user := os.Getenv(PG_USER)
	if user == "" {
		user = "velora"
	}
	g.systemInfoMap[PG_HOST] = db.DbCredentials{
		Host:     host,
		Port:     port,
		Database: database,
		Username: user,
		Password: os.Getenv(PG_PASSWORD),
		SSLMode:  os.Getenv(PG_SSL_MODE),
	}
	return nil
}

func (g systemInfoServiceImpl) GetCredsFromEnv() db.DbCredentials {
	return g.systemInfoMap[PG_HOST].(db.DbCredentials)
}

func (g systemInfoServiceImpl) setJwtSecret() error {
	secret := os.Getenv(JWT_SECRET)
	if secret == "" {
		if g.IsProductionMode() {
			return fmt.Errorf("%v env is required in production mode", JWT_SECRET)
		}
		log.Warnf("%v is not set, using development secret", JWT_SECRET)
		secret = devJwtSecret
	}
	g.systemInfoMap[JWT_SECRET] = []byte(secret)
	return nil
}

func (g systemInfoServiceImpl) GetJwtSecret() []byte {
	return g.systemInfoMap[JWT_SECRET].([]byte)
}

func (g systemInfoServiceImpl) setTokenTTL() error {
	ttl, err := getDurationEnv(TOKEN_TTL, 12*time.Hour)
	if err != nil {
		return err
	}
	g.systemInfoMap[TOKEN_TTL] = ttl
	return nil
}

func (g systemInfoServiceImpl) GetTokenTTL() time.Duration {
	return g.systemInfoMap[TOKEN_TTL].(time.Duration)
}

func (g systemInfoServiceImpl) setOlricConfig() error {
	replicaCount := 0
	if rcStr := os.Getenv(OLRIC_REPLICA_COUNT); rcStr != "" {
		var err error
		replicaCount, err = strconv.Atoi(rcStr)
		if err != nil {
			return fmt.Errorf("failed to parse %v env value: %w", OLRIC_REPLICA_COUNT, err)
		}
	}
	var peers []string
	for _, peer := range strings.Split(os.Getenv(OLRIC_PEERS), ",") {
		if peer = strings.TrimSpace(peer); peer != "" {
			peers = append(peers, peer)
		}
	}
	g.systemInfoMap[OLRIC_DISCOVERY_MODE] = client.OlricConfig{
		DiscoveryMode: os.Getenv(OLRIC_DISCOVERY_MODE),
		ReplicaCount:  replicaCount,
		Namespace:     os.Getenv(NAMESPACE),
		Peers:         peers,
	}
	return nil
}

func (g systemInfoServiceImpl) GetOlricConfig() client.OlricConfig {
	return g.systemInfoMap[OLRIC_DISCOVERY_MODE].(client.OlricConfig)
}

func (g systemInfoServiceImpl) setReminderWebhookUrl() {
	g.systemInfoMap[REMINDER_WEBHOOK_URL] = os.Getenv(REMINDER_WEBHOOK_URL)
}

func (g systemInfoServiceImpl) GetReminderWebhookUrl() string {
	return g.systemInfoMap[REMINDER_WEBHOOK_URL].(string)
}

func (g systemInfoServiceImpl) setReminderPollInterval() error {
	interval, err := getDurationEnv(REMINDER_POLL_INTERVAL, 10*time.Second)
	if err != nil {
		return err
	}
	g.systemInfoMap[REMINDER_POLL_INTERVAL] = interval
	return nil
}

func (g systemInfoServiceImpl) GetReminderPollInterval() time.Duration {
	return g.systemInfoMap[REMINDER_POLL_INTERVAL].(time.Duration)
}

func (g systemInfoServiceImpl) setStrengthPolicy() {
	g.systemInfoMap[STRENGTH_POLICY] = os.Getenv(STRENGTH_POLICY)
}

func (g systemInfoServiceImpl) GetStrengthPolicy() string {
	return g.systemInfoMap[STRENGTH_POLICY].(string)
}

func (g systemInfoServiceImpl) setInsecureSkipVerify() {
	g.systemInfoMap[INSECURE_SKIP_VERIFY] = getBoolEnv(INSECURE_SKIP_VERIFY)
}

func (g systemInfoServiceImpl) InsecureSkipVerify() bool {
	return g.systemInfoMap[INSECURE_SKIP_VERIFY].(bool)
}

func (g systemInfoServiceImpl) setExecutorId() {
	executorId := os.Getenv(EXECUTOR_ID)
	if executorId == "" {
		hostname, err := os.Hostname()
		if err != nil || hostname == "" {
			hostname = "velora"
		}
		executorId = hostname + "-" + uuid.NewString()[:8]
	}
	g.systemInfoMap[EXECUTOR_ID] = executorId
}

func (g systemInfoServiceImpl) GetExecutorId() string {
	return g.systemInfoMap[EXECUTOR_ID].(string)
}

func getBoolEnv(name string) bool {
	val, err := strconv.ParseBool(os.Getenv(name))
	if err != nil {
		return false
	}
	return val
}

func getDurationEnv(name string, def time.Duration) (time.Duration, error) {
	str := os.Getenv(name)
	if str == "" {
		return def, nil
	}
	d, err := time.ParseDuration(str)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %v env value: %w", name, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%v must be positive, got %v", name, d)
	}
	return d, nil
}
