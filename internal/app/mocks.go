package app

import "mentorhub_backend/internal/email"

// MockEmailProvider is used in tests and local development.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(email *email.Email) error { return nil }
