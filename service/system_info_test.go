package service

import (
	"testing"
	"time"
)

func TestSystemInfoService_Defaults(t *testing.T) {
	for _, name := range []string{LISTEN_ADDRESS, PG_HOST, PG_PORT, JWT_SECRET, TOKEN_TTL, PRODUCTION_MODE, OLRIC_PEERS, REMINDER_POLL_INTERVAL, EXECUTOR_ID} {
		t.Setenv(name, "")
	}
	s, err := NewSystemInfoService()
	if err != nil {
		t.Fatalf("NewSystemInfoService: %v", err)
	}
	if s.GetListenAddress() != ":8080" {
		t.Fatalf("unexpected listen address %q", s.GetListenAddress())
	}
	creds := s.GetCredsFromEnv()
	if creds.Host != "localhost" || creds.Port != 5432 || creds.Database != "velora" {
		t.Fatalf("unexpected db credentials %+v", creds)
	}
	if string(s.GetJwtSecret()) != devJwtSecret {
		t.Fatalf("expected development secret outside production")
	}
	if s.GetTokenTTL() != 12*time.Hour {
		t.Fatalf("unexpected token ttl %v", s.GetTokenTTL())
	}
	if s.GetReminderPollInterval() != 10*time.Second {
		t.Fatalf("unexpected poll interval %v", s.GetReminderPollInterval())
	}
	if s.GetExecutorId() == "" {
		t.Fatalf("executor id must be generated")
	}
}

func TestSystemInfoService_FromEnv(t *testing.T) {
	t.Setenv(PG_PORT, "6432")
	t.Setenv(TOKEN_TTL, "30m")
	t.Setenv(OLRIC_PEERS, "10.0.0.1:3320, 10.0.0.2:3320,")
	t.Setenv(OLRIC_REPLICA_COUNT, "3")
	t.Setenv(STRENGTH_POLICY, "simplified")
	t.Setenv(EXECUTOR_ID, "node-a")

	s, err := NewSystemInfoService()
	if err != nil {
		t.Fatalf("NewSystemInfoService: %v", err)
	}
	if s.GetCredsFromEnv().Port != 6432 {
		t.Fatalf("unexpected port %d", s.GetCredsFromEnv().Port)
	}
	if s.GetTokenTTL() != 30*time.Minute {
		t.Fatalf("unexpected ttl %v", s.GetTokenTTL())
	}
	oc := s.GetOlricConfig()
	if len(oc.Peers) != 2 || oc.Peers[1] != "10.0.0.2:3320" || oc.ReplicaCount != 3 {
		t.Fatalf("unexpected olric config %+v", oc)
	}
	if s.GetStrengthPolicy() != "simplified" || s.GetExecutorId() != "node-a" {
		t.Fatalf("unexpected policy/executor %q %q", s.GetStrengthPolicy(), s.GetExecutorId())
	}
}

func TestSystemInfoService_ProductionRequiresSecret(t *testing.T) {
	t.Setenv(PRODUCTION_MODE, "true")
	t.Setenv(JWT_SECRET, "")
	if _, err := NewSystemInfoService(); err == nil {
		t.Fatalf("expected error without JWT_SECRET in production mode")
	}
}

func TestSystemInfoService_BadValues(t *testing.T) {
	t.Setenv(PG_PORT, "not-a-port")
	if _, err := NewSystemInfoService(); err == nil {
		t.Fatalf("expected error for bad port")
	}
	t.Setenv(PG_PORT, "")
	t.Setenv(TOKEN_TTL, "-5m")
	if _, err := NewSystemInfoService(); err == nil {
		t.Fatalf("expected error for negative ttl")
	}
}
