package service

import (
	"FitSphere/internal/api/dto"
	"FitSphere/internal/model"
	"FitSphere/internal/pkg/util"
	"FitSphere/internal/repository"
	"context"
	"math"
	"sort"
	"time"
)

type ChallengeService interface {
	Create(ctx context.Context, creatorID uint64, d *dto.ChallengeCreateDTO) (*dto.ChallengeSummaryDTO, error)
	Join(ctx context.Context, userID, challengeID uint64) error
	ListActive(ctx context.Context) ([]*dto.ChallengeSummaryDTO, error)
	GetDetails(ctx context.Context, challengeID uint64) (*dto.ChallengeDetailDTO, error)
}

type ChallengeServiceImpl struct {
	challengeRepo repository.ChallengeRepo
	healthRepo    repository.HealthRepo
	userRepo      repository.UserRepo
}

func NewChallengeService(challengeRepo repository.ChallengeRepo, healthRepo repository.HealthRepo, userRepo repository.UserRepo) ChallengeService {
	return &ChallengeServiceImpl{
		challengeRepo: challengeRepo,
		healthRepo:    healthRepo,
		userRepo:      userRepo,
	}
}

func (s *ChallengeServiceImpl) Create(ctx context.Context, creatorID uint64, d *dto.ChallengeCreateDTO) (*dto.ChallengeSummaryDTO, error) {
	if d.GoalType != model.GoalTypeSteps && d.GoalType != model.GoalTypeCalories {
		return nil, ErrGoalTypeInvalid
	}
	if d.GoalValue <= 0 {
		return nil, ErrGoalValueInvalid
	}
	start, err := util.ParseDate(d.StartDate)
	if err != nil {
		return nil, ErrParamInvalid
	}
	end, err := util.ParseDate(d.EndDate)
	if err != nil {
		return nil, ErrParamInvalid
	}
	if end.Before(start) {
		return nil, ErrChallengeWindow
	}

	creator, err := s.userRepo.GetUserByID(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if creator == nil {
		return nil, ErrUserNotFound
	}

	isPublic := true
	if d.IsPublic != nil {
		isPublic = *d.IsPublic
	}

	challenge := &model.Challenge{
		Title:       d.Title,
		Description: d.Description,
		CreatorID:   creatorID,
		StartDate:   start,
		EndDate:     end,
		IsPublic:    isPublic,
		GoalType:    d.GoalType,
		GoalValue:   d.GoalValue,
	}
	err = s.challengeRepo.CreateWithCreator(ctx, challenge)
	if err != nil {
		return nil, err
	}

	// 新建挑战只有创建者一人，窗口内进度从其既有记录算起
	return s.buildSummary(ctx, challenge)
}

func (s *ChallengeServiceImpl) Join(ctx context.Context, userID, challengeID uint64) error {
	challenge, err := s.challengeRepo.GetByID(ctx, challengeID)
	if err != nil {
		return err
	}
	if challenge == nil {
		return ErrChallengeNotFound
	}

	participant := &model.ChallengeParticipant{
		UserID:      userID,
		ChallengeID: challengeID,
		JoinedAt:    time.Now(),
	}
	err = s.challengeRepo.AddParticipant(ctx, participant)
	if err != nil {
		// 复合主键拒绝重复加入，不做先查后插
		if isDuplicateKeyErr(err) {
			return ErrChallengeJoined
		}
		return err
	}
	return nil
}

func (s *ChallengeServiceImpl) ListActive(ctx context.Context) ([]*dto.ChallengeSummaryDTO, error) {
	today := util.Midnight(time.Now())
	challenges, err := s.challengeRepo.ListActive(ctx, today)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ChallengeSummaryDTO, 0, len(challenges))
	for _, challenge := range challenges {
		summary, err := s.buildSummary(ctx, challenge)
		if err != nil {
			return nil, err
		}
		out = append(out, summary)
	}
	return out, nil
}

// GetDetails 一条分组 SQL 取回全部参与者的窗口贡献，按目标指标倒序排行，
// 同分按 user_id 升序；没有记录的参与者补零行
func (s *ChallengeServiceImpl) GetDetails(ctx context.Context, challengeID uint64) (*dto.ChallengeDetailDTO, error) {
	challenge, err := s.challengeRepo.GetByID(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if challenge == nil {
		return nil, ErrChallengeNotFound
	}

	participantIDs, err := s.challengeRepo.GetParticipantIDs(ctx, challengeID)
	if err != nil {
		return nil, err
	}

	totals, err := s.healthRepo.SumRangeGrouped(ctx, participantIDs, challenge.StartDate, challenge.EndDate)
	if err != nil {
		return nil, err
	}
	totalsByUser := make(map[uint64]*repository.UserRangeTotal, len(totals))
	for _, t := range totals {
		totalsByUser[t.UserID] = t
	}

	users, err := s.userRepo.GetUserByIDs(ctx, participantIDs)
	if err != nil {
		return nil, err
	}
	usersByID := make(map[uint64]*model.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	participants := make([]*dto.ParticipantProgressDTO, 0, len(participantIDs))
	var groupSteps, groupCalories int64
	for _, id := range participantIDs {
		item := &dto.ParticipantProgressDTO{UserID: id}
		if u, ok := usersByID[id]; ok {
			item.Username = u.Username
			item.ProfilePicURL = u.ProfilePicURL
		}
		if t, ok := totalsByUser[id]; ok {
			item.TotalSteps = t.TotalSteps
			item.TotalCalories = t.TotalCalories
		}
		groupSteps += item.TotalSteps
		groupCalories += item.TotalCalories
		participants = append(participants, item)
	}

	byCalories := challenge.GoalType == model.GoalTypeCalories
	sort.SliceStable(participants, func(i, j int) bool {
		a, b := participants[i], participants[j]
		am, bm := a.TotalSteps, b.TotalSteps
		if byCalories {
			am, bm = a.TotalCalories, b.TotalCalories
		}
		if am != bm {
			return am > bm
		}
		return a.UserID < b.UserID
	})

	groupProgress := groupSteps
	if byCalories {
		groupProgress = groupCalories
	}

	return &dto.ChallengeDetailDTO{
		ID:            challenge.ID,
		Title:         challenge.Title,
		Description:   challenge.Description,
		CreatorID:     challenge.CreatorID,
		StartDate:     challenge.StartDate.Format(time.DateOnly),
		EndDate:       challenge.EndDate.Format(time.DateOnly),
		GoalType:      challenge.GoalType,
		GoalValue:     challenge.GoalValue,
		GroupProgress: groupProgress,
		Percentage:    goalPercentage(groupProgress, challenge.GoalValue),
		Completed:     groupProgress >= int64(challenge.GoalValue),
		Expired:       util.Midnight(time.Now()).After(challenge.EndDate),
		Participants:  participants,
	}, nil
}

func (s *ChallengeServiceImpl) buildSummary(ctx context.Context, challenge *model.Challenge) (*dto.ChallengeSummaryDTO, error) {
	participantIDs, err := s.challengeRepo.GetParticipantIDs(ctx, challenge.ID)
	if err != nil {
		return nil, err
	}
	total, err := s.healthRepo.SumRange(ctx, participantIDs, challenge.StartDate, challenge.EndDate)
	if err != nil {
		return nil, err
	}

	progress := total.TotalSteps
	if challenge.GoalType == model.GoalTypeCalories {
		progress = total.TotalCalories
	}

	return &dto.ChallengeSummaryDTO{
		ID:               challenge.ID,
		Title:            challenge.Title,
		Description:      challenge.Description,
		CreatorID:        challenge.CreatorID,
		StartDate:        challenge.StartDate.Format(time.DateOnly),
		EndDate:          challenge.EndDate.Format(time.DateOnly),
		GoalType:         challenge.GoalType,
		GoalValue:        challenge.GoalValue,
		ParticipantCount: int64(len(participantIDs)),
		CurrentProgress:  progress,
		Percentage:       goalPercentage(progress, challenge.GoalValue),
	}, nil
}

// goalPercentage 展示层封顶 100，数据层进度本身允许超出目标
func goalPercentage(current int64, goal int) int {
	if goal <= 0 {
		return 0
	}
	pct := int(math.Round(float64(current) / float64(goal) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}
