package testhelpers

import (
	"context"

	"github.com/Acronica/Team-Maker/domain/entities"

	"github.com/stretchr/testify/mock"
)

// MockVoiceGateway is a mock implementation of interfaces.VoiceGateway
type MockVoiceGateway struct {
	mock.Mock
}

func (m *MockVoiceGateway) VoiceMembers(ctx context.Context, guildID, channelID string) ([]entities.Member, error) {
	args := m.Called(ctx, guildID, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Member), args.Error(1)
}

func (m *MockVoiceGateway) MoveMember(ctx context.Context, guildID, userID, channelID string) error {
	args := m.Called(ctx, guildID, userID, channelID)
	return args.Error(0)
}

// MockDirectory is a mock implementation of interfaces.Directory
type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) GuildInfo(ctx context.Context, guildID string) (entities.Guild, error) {
	args := m.Called(ctx, guildID)
	return args.Get(0).(entities.Guild), args.Error(1)
}

func (m *MockDirectory) VoiceCategories(ctx context.Context, guildID string) ([]entities.Category, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Category), args.Error(1)
}

func (m *MockDirectory) ChannelName(ctx context.Context, channelID string) (string, error) {
	args := m.Called(ctx, channelID)
	return args.String(0), args.Error(1)
}
