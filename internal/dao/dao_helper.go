package dao

import (
	"errors"
	"time"

	"github.com/evanhugh/assistant-hub-service/pkg/timex"

	"gorm.io/gorm"
)

// notFound 将 gorm 的未找到错误映射为指定的领域错误
func notFound(err error, domainErr error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr
	}
	return err
}

func toTimexPtr(t *time.Time) *timex.Time {
	if t == nil {
		return nil
	}
	tt := timex.Time(*t)
	return &tt
}

func toTimePtr(t *timex.Time) *time.Time {
	if t == nil {
		return nil
	}
	tt := time.Time(*t)
	return &tt
}
