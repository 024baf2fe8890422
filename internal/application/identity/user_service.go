package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/identity"
	"github.com/shopcore/backend/internal/domain/shared"
)

// UserService handles account management. List and Delete are admin
// operations; Get and Update also serve a user editing their own account.
type UserService struct {
	userRepo identity.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// List returns users matching the filter, paginated
func (s *UserService) List(ctx context.Context, filter UserListFilter) (*shared.Paginated[UserResponse], error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Search = filter.Search
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.Role != "" {
		domainFilter.Filters["role"] = filter.Role
	}
	if filter.IsActive != nil {
		domainFilter.Filters["is_active"] = *filter.IsActive
	}

	users, err := s.userRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.userRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}

	result := shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// Get returns a user visible to the actor: admins see anyone, others
// only themselves
func (s *UserService) Get(ctx context.Context, actorID, id uuid.UUID, actorAdmin bool) (*UserResponse, error) {
	if !actorAdmin && actorID != id {
		return nil, shared.ErrForbidden
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToUserResponse(user)
	return &resp, nil
}

// Update edits a user account. Role and is_active are mutable only by an
// admin; everything else is also open to the account's own user.
func (s *UserService) Update(ctx context.Context, actorID, id uuid.UUID, actorAdmin bool, req AdminUpdateUserRequest) (*UserResponse, error) {
	if !actorAdmin && actorID != id {
		return nil, shared.ErrForbidden
	}
	if !actorAdmin && (req.Role != nil || req.IsActive != nil) {
		return nil, shared.ErrForbidden
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil && *req.Username != user.Username {
		exists, err := s.userRepo.ExistsByUsername(ctx, *req.Username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.ErrDuplicateUsername
		}
		if err := user.SetUsername(*req.Username); err != nil {
			return nil, err
		}
	}

	if req.Email != nil && *req.Email != user.Email {
		exists, err := s.userRepo.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.ErrDuplicateEmail
		}
		if err := user.SetEmail(*req.Email); err != nil {
			return nil, err
		}
	}

	if req.Password != nil {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, err
		}
	}

	if req.FirstName != nil || req.LastName != nil || req.Phone != nil {
		firstName := user.FirstName
		lastName := user.LastName
		phone := user.Phone
		if req.FirstName != nil {
			firstName = *req.FirstName
		}
		if req.LastName != nil {
			lastName = *req.LastName
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if err := user.SetProfile(firstName, lastName, phone); err != nil {
			return nil, err
		}
	}

	if req.Role != nil {
		if err := user.SetRole(identity.UserRole(*req.Role)); err != nil {
			return nil, err
		}
	}

	if req.IsActive != nil {
		user.SetActive(*req.IsActive)
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	resp := ToUserResponse(user)
	return &resp, nil
}

// Delete removes a user account
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.userRepo.Delete(ctx, id)
}
