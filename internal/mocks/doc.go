// Package mocks provides hand-written test doubles for the interfaces used
// across the application, so individual test files do not each define their
// own inline fakes.
//
// Two styles are available. Function-field mocks (MockJWTService,
// MockPasswordVerifier) let a test override a single method and otherwise fall
// back to default values. In-memory fakes (MockUserStore, MockQueueStore,
// MockPublisher) behave like the real dependency and are safe for concurrent
// use, which makes them suitable for end-to-end handler tests. For
// expectation-style tests TestifyMockUserStore wraps testify/mock.
//
// Usage:
//
//	jwtService := &mocks.MockJWTService{
//	    GenerateTokenFn: func(ctx context.Context, userID uuid.UUID) (*auth.Token, error) {
//	        return &auth.Token{Value: "mocked-token", ExpiresAt: time.Now().Add(time.Hour)}, nil
//	    },
//	}
package mocks
