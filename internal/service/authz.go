package service

import (
	"Rankboard/internal/model"
	"Rankboard/internal/repository"
	"context"
)

// Session 当前请求的登录身份。UserID 为 0 表示未登录。
type Session struct {
	UserID uint64
	Role   string
}

func (s Session) Authenticated() bool {
	return s.UserID != 0
}

func (s Session) IsStaff() bool {
	return s.Role == model.RoleAdmin || s.Role == model.RoleSeoDev
}

// Decision 鉴权结果。拒绝时携带原因，调用方直接返回，不做任何数据写入。
type Decision struct {
	Allowed bool
	Reason  error
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason error) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// AuthzService 统一鉴权入口。角色是封闭集合（ADMIN / SEO_DEV / CUSTOMER），
// 所有受保护操作在任何数据访问前先经过这里。
//
// 策略表：
//
//	操作                  ADMIN  SEO_DEV        CUSTOMER
//	用户管理              允许   拒绝           仅本人
//	客户读写(指标/关键词)  允许   允许(任意客户)  仅本人的客户
//	AI概览创建/删除        允许   允许           拒绝
//	付款凭证列表/审核      允许   允许           拒绝
//
// 注意：SEO_DEV 对任意客户放行，不限于 seo_dev_id 指派的客户；
// 指派关系只用于客户列表过滤。收紧与否是产品决策，见 DESIGN.md。
type AuthzService interface {
	RequireSession(session Session) Decision
	RequireStaff(session Session) Decision
	RequireAdmin(session Session) Decision
	RequireSelfOrAdmin(session Session, targetUserID uint64) Decision
	RequireCustomerAccess(ctx context.Context, session Session, customerID uint64) Decision
	RequireKeywordAccess(ctx context.Context, session Session, keywordID uint64) Decision
	RequireRecommendAccess(ctx context.Context, session Session, recommendID uint64) Decision
	RequireOverviewAccess(ctx context.Context, session Session, overviewID uint64) Decision
}

type AuthzServiceImpl struct {
	customerRepo  repository.CustomerRepo
	keywordRepo   repository.KeywordRepo
	recommendRepo repository.RecommendRepo
	overviewRepo  repository.AiOverviewRepo
}

func NewAuthzService(
	customerRepo repository.CustomerRepo,
	keywordRepo repository.KeywordRepo,
	recommendRepo repository.RecommendRepo,
	overviewRepo repository.AiOverviewRepo,
) AuthzService {
	return &AuthzServiceImpl{
		customerRepo:  customerRepo,
		keywordRepo:   keywordRepo,
		recommendRepo: recommendRepo,
		overviewRepo:  overviewRepo,
	}
}

func (s *AuthzServiceImpl) RequireSession(session Session) Decision {
	if !session.Authenticated() {
		return deny(ErrUnauthenticated)
	}
	return allow()
}

func (s *AuthzServiceImpl) RequireStaff(session Session) Decision {
	if !session.Authenticated() {
		return deny(ErrUnauthenticated)
	}
	if !session.IsStaff() {
		return deny(ErrForbidden)
	}
	return allow()
}

func (s *AuthzServiceImpl) RequireAdmin(session Session) Decision {
	if !session.Authenticated() {
		return deny(ErrUnauthenticated)
	}
	if session.Role != model.RoleAdmin {
		return deny(ErrForbidden)
	}
	return allow()
}

func (s *AuthzServiceImpl) RequireSelfOrAdmin(session Session, targetUserID uint64) Decision {
	if !session.Authenticated() {
		return deny(ErrUnauthenticated)
	}
	if session.Role == model.RoleAdmin || session.UserID == targetUserID {
		return allow()
	}
	return deny(ErrForbidden)
}

// RequireCustomerAccess 归属校验需要先载入客户档案拿到 user_id，再做比对
func (s *AuthzServiceImpl) RequireCustomerAccess(ctx context.Context, session Session, customerID uint64) Decision {
	if !session.Authenticated() {
		return deny(ErrUnauthenticated)
	}
	if session.IsStaff() {
		return allow()
	}

	customer, err := s.customerRepo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return deny(UnExpectedError)
	}
	if customer == nil {
		return deny(ErrCustomerNotFound)
	}
	if customer.UserID != session.UserID {
		return deny(ErrForbidden)
	}
	return allow()
}

// RequireKeywordAccess 子资源先解析出父客户再走归属校验
func (s *AuthzServiceImpl) RequireKeywordAccess(ctx context.Context, session Session, keywordID uint64) Decision {
	if !session.Authenticated() {
		return deny(ErrUnauthenticated)
	}

	report, err := s.keywordRepo.GetReportByID(ctx, keywordID)
	if err != nil {
		return deny(UnExpectedError)
	}
	if report == nil {
		return deny(ErrKeywordNotFound)
	}
	return s.RequireCustomerAccess(ctx, session, report.CustomerID)
}

func (s *AuthzServiceImpl) RequireRecommendAccess(ctx context.Context, session Session, recommendID uint64) Decision {
	if !session.Authenticated() {
		return deny(ErrUnauthenticated)
	}

	recommend, err := s.recommendRepo.GetRecommendByID(ctx, recommendID)
	if err != nil {
		return deny(UnExpectedError)
	}
	if recommend == nil {
		return deny(ErrRecommendNotFound)
	}
	return s.RequireCustomerAccess(ctx, session, recommend.CustomerID)
}

func (s *AuthzServiceImpl) RequireOverviewAccess(ctx context.Context, session Session, overviewID uint64) Decision {
	if !session.Authenticated() {
		return deny(ErrUnauthenticated)
	}

	overview, err := s.overviewRepo.GetOverviewByID(ctx, overviewID)
	if err != nil {
		return deny(UnExpectedError)
	}
	if overview == nil {
		return deny(ErrOverviewNotFound)
	}
	return s.RequireCustomerAccess(ctx, session, overview.CustomerID)
}
