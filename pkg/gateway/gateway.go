// Package gateway defines the chat service contract shared by the backends in its subpackages.
package gateway

import (
	"context"
	"net/http"
	"strings"

	"github.com/dskvich/prompt-workspace-bot/pkg/domain"
)

const (
	SystemInstruction = "당신은 전문 콘텐츠 크리에이터이자 마케팅 전략가입니다. 당신의 목표는 사용자가 특정 프레임워크와 모듈을 기반으로 고품질 콘텐츠를 생성하도록 돕는 것입니다. 모든 응답은 한국어로 자연스럽게 작성해주세요."
	Temperature       = 0.7

	EmptyReplyPlaceholder    = "응답이 생성되지 않았습니다."
	InvalidCredentialMessage = "API 키가 올바르지 않거나 만료되었습니다. 키를 확인해주세요."
)

// Gateway opens conversations with a remote chat service.
type Gateway interface {
	Name() string
	OpenSession(ctx context.Context, credential string) (Session, error)
}

// Session keeps the conversational context of one exchange. Send is not retried.
type Session interface {
	Send(ctx context.Context, text string) (string, error)
}

func RequireCredential(credential string) error {
	if strings.TrimSpace(credential) == "" {
		return domain.ErrMissingCredential
	}
	return nil
}

// IsAuthFailure reports whether a status code or service message means the credential was rejected.
func IsAuthFailure(status int, message string) bool {
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return true
	}
	return strings.Contains(message, "API key") || strings.Contains(message, "403")
}

func InvalidCredential(err error) error {
	return &domain.InvalidCredentialError{Message: InvalidCredentialMessage, Err: err}
}

func OrPlaceholder(reply string) string {
	if strings.TrimSpace(reply) == "" {
		return EmptyReplyPlaceholder
	}
	return reply
}
