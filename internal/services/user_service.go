package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amsa-mn/website-backend/internal/dto"
	"github.com/amsa-mn/website-backend/internal/models"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// PublicProfile returns the reduced view shown to anonymous callers and
// other users.
func (s *UserService) PublicProfile(userID uuid.UUID) (*dto.PublicProfile, error) {
	var user models.User
	if err := s.db.Preload("Profile").First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	resp := &dto.PublicProfile{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
	if p := user.Profile; p != nil {
		resp.SchoolName = p.SchoolName
		resp.Degree = p.Degree
		resp.GradYear = p.GradYear
		resp.Major = p.Major
		resp.SecondMajor = p.SecondMajor
		resp.Facebook = p.Facebook
		resp.Instagram = p.Instagram
		resp.LinkedIn = p.LinkedIn
		resp.Bio = p.Bio
		resp.ProfilePic = p.ProfilePic
	}
	return resp, nil
}

// Members lists all board seats grouped for the roster page: strategy board,
// executive terms keyed by year, and the current-year executive board.
func (s *UserService) Members() (*dto.MembersResponse, error) {
	var seats []models.BoardRole
	if err := s.db.Preload("User").Preload("User.Profile").Find(&seats).Error; err != nil {
		return nil, err
	}

	resp := &dto.MembersResponse{
		Tuz:        make(map[int][]dto.BoardMember),
		Sb:         []dto.BoardMember{},
		CurrentTuz: []dto.BoardMember{},
	}

	currentYear := time.Now().Year()
	for _, seat := range seats {
		member := boardMember(seat)
		switch seat.Role {
		case "sb":
			resp.Sb = append(resp.Sb, member)
		case "tuz":
			if seat.Year != 0 {
				resp.Tuz[seat.Year] = append(resp.Tuz[seat.Year], member)
			}
			if seat.Year == currentYear {
				resp.CurrentTuz = append(resp.CurrentTuz, member)
			}
		}
	}

	return resp, nil
}

func boardMember(seat models.BoardRole) dto.BoardMember {
	card := dto.MemberCard{
		FirstName: seat.User.FirstName,
		LastName:  seat.User.LastName,
		Email:     seat.User.Email,
	}
	if p := seat.User.Profile; p != nil {
		card.SchoolName = p.SchoolName
		card.ProfilePic = p.ProfilePic
		card.LinkedIn = p.LinkedIn
	}
	return dto.BoardMember{
		UserID:  seat.UserID,
		Name:    seat.Name,
		Role:    seat.Role,
		Year:    seat.Year,
		YearEnd: seat.YearEnd,
		User:    card,
	}
}
