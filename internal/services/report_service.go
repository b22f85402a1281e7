package services

import (
	"fitpro_backend/internal/models"
	"fitpro_backend/internal/repositories"
	"fitpro_backend/internal/services/dto"
	"fitpro_backend/pkg/apperrors"
)

// ReportService assembles read-only snapshots for export. It composes
// repositories directly instead of going through the other services so
// a report is one consistent read, not a fan of HTTP-shaped calls.
type ReportService interface {
	MemberReport(memberID uint) (*dto.MemberReport, error)
	TrainerReport(trainerID uint) (*dto.TrainerReport, error)
}

type ReportServiceImpl struct {
	userRepo     repositories.UserRepository
	profileRepo  repositories.ProfileRepository
	workoutRepo  repositories.WorkoutRepository
	sessionRepo  repositories.SessionRepository
	progressRepo repositories.ProgressRepository
}

func NewReportService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	workoutRepo repositories.WorkoutRepository,
	sessionRepo repositories.SessionRepository,
	progressRepo repositories.ProgressRepository,
) ReportService {
	return &ReportServiceImpl{
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		workoutRepo:  workoutRepo,
		sessionRepo:  sessionRepo,
		progressRepo: progressRepo,
	}
}

func (s *ReportServiceImpl) MemberReport(memberID uint) (*dto.MemberReport, error) {
	member, err := s.findUserWithRole(memberID, models.UserRoleMember)
	if err != nil {
		return nil, err
	}

	report := &dto.MemberReport{User: dto.NewUserResponse(member)}

	profile, err := s.profileRepo.FindMemberProfileByUserID(memberID)
	if err == nil {
		report.Profile = profile
	} else if !apperrors.Is(err, repositories.ErrProfileNotFound) {
		return nil, apperrors.DatabaseError(err)
	}

	workouts, err := s.workoutRepo.FindByMemberID(memberID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	report.Workouts = make([]*dto.WorkoutResponse, 0, len(workouts))
	for i := range workouts {
		resp, err := dto.NewWorkoutResponse(&workouts[i])
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		report.Workouts = append(report.Workouts, resp)
	}

	records, err := s.progressRepo.FindByMemberID(memberID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	report.ProgressRecords = records

	return report, nil
}

func (s *ReportServiceImpl) TrainerReport(trainerID uint) (*dto.TrainerReport, error) {
	trainer, err := s.findUserWithRole(trainerID, models.UserRoleTrainer)
	if err != nil {
		return nil, err
	}

	report := &dto.TrainerReport{User: dto.NewUserResponse(trainer)}

	profile, err := s.profileRepo.FindTrainerProfileByUserID(trainerID)
	if err == nil {
		report.Profile = profile
	} else if !apperrors.Is(err, repositories.ErrProfileNotFound) {
		return nil, apperrors.DatabaseError(err)
	}

	sessions, err := s.sessionRepo.FindByTrainerID(trainerID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	report.Sessions = dto.NewSessionListResponse(sessions)

	// Clients are the distinct members seen across the trainer's
	// sessions, in first-seen order.
	seen := make(map[uint]bool)
	report.Clients = make([]*dto.UserResponse, 0)
	for _, session := range sessions {
		if seen[session.MemberID] {
			continue
		}
		seen[session.MemberID] = true
		client, err := s.userRepo.FindByID(session.MemberID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrUserNotFound) {
				continue
			}
			return nil, apperrors.DatabaseError(err)
		}
		report.Clients = append(report.Clients, dto.NewUserResponse(client))
	}

	return report, nil
}

func (s *ReportServiceImpl) findUserWithRole(userID uint, role models.UserRole) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	if user.Role != role {
		return nil, apperrors.ErrInvalidOperation("report", "User role does not match the requested report")
	}
	return user, nil
}
