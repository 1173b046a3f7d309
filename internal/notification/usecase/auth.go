package usecase

import (
	"context"

	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/jwt"
)

func (s *Usecase) requireAuth(ctx context.Context) (int64, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil || clm.AdminID() == 0 {
		return 0, goerror.NewBusiness("Unauthenticated", goerror.CodeUnauthorized)
	}

	return clm.AdminID(), nil
}
