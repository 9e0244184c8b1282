package signal

import (
	"testing"
	"time"
)

func TestChatRateLimiterBlocksOverLimit(t *testing.T) {
	rl := NewChatRateLimiter(2, time.Minute)

	if !rl.Allow("a") || !rl.Allow("a") {
		t.Fatal("first messages within limit were blocked")
	}
	if rl.Allow("a") {
		t.Fatal("third message within the window was allowed")
	}
	// другое соединение не делит окно
	if !rl.Allow("b") {
		t.Fatal("limiter leaked across connections")
	}
}

func TestChatRateLimiterWindowExpires(t *testing.T) {
	rl := NewChatRateLimiter(1, 10*time.Millisecond)

	if !rl.Allow("a") {
		t.Fatal("first message blocked")
	}
	if rl.Allow("a") {
		t.Fatal("second message inside window allowed")
	}
	time.Sleep(20 * time.Millisecond)
	if !rl.Allow("a") {
		t.Fatal("message after window expiry blocked")
	}
}

func TestChatRateLimiterForget(t *testing.T) {
	rl := NewChatRateLimiter(1, time.Minute)
	rl.Allow("a")
	rl.Forget("a")
	if !rl.Allow("a") {
		t.Fatal("window survived Forget")
	}
}
