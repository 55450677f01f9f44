package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/traffiscan/internal/impact"
	"github.com/shenikar/traffiscan/internal/models"
	"github.com/shenikar/traffiscan/internal/service/mocks"
	"github.com/shenikar/traffiscan/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTrafficScan_StoredOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	incidents := mocks.NewMockIncidentService(ctrl)
	service := NewTrafficService(incidents, nil, testLogger(), clockwork.NewFakeClockAt(testNow))
	ctx := context.Background()
	viewer := geo.Coordinate{}

	a := incidentAt(2, models.LevelHigh)
	b := incidentAt(1, models.LevelHigh)
	incidents.EXPECT().NearbyIncidents(ctx, viewer, 5.0, maxScanIncidents).Return([]models.RankedIncident{
		{Item: b, Distance: 1},
		{Item: a, Distance: 2},
	}, nil).Times(1)

	report, err := service.Scan(ctx, viewer, 0)

	require.NoError(t, err)
	assert.Equal(t, DefaultScanRadiusMeters, report.RadiusMeters)
	require.Len(t, report.Incidents, 2)
	assert.Same(t, b, report.Incidents[0].Item)
	assert.Same(t, a, report.Incidents[1].Item)
	assert.Equal(t, impact.TrafficCritical, report.TrafficLevel)
	assert.Equal(t, testNow, report.Timestamp)
}

func TestTrafficScan_MergesSimulatedIncidents(t *testing.T) {
	ctrl := gomock.NewController(t)
	incidents := mocks.NewMockIncidentService(ctrl)
	simulator := mocks.NewMockIncidentSimulator(ctrl)
	service := NewTrafficService(incidents, simulator, testLogger(), clockwork.NewFakeClockAt(testNow))
	ctx := context.Background()
	viewer := geo.Coordinate{}

	stored := incidentAt(1.5, models.LevelMedium)
	simNear := incidentAt(0.3, models.LevelLow)
	simFar := incidentAt(2.5, models.LevelMedium)
	simNear.Source = models.SourceSimulated
	simFar.Source = models.SourceSimulated

	incidents.EXPECT().NearbyIncidents(ctx, viewer, 2.0, maxScanIncidents).
		Return([]models.RankedIncident{{Item: stored, Distance: 1.5}}, nil).Times(1)
	simulator.EXPECT().Generate(viewer).Return([]*models.Incident{simFar, simNear}).Times(1)

	report, err := service.Scan(ctx, viewer, 2000)

	require.NoError(t, err)
	// simFar за пределами 2 км отбрасывается
	require.Len(t, report.Incidents, 2)
	assert.Same(t, simNear, report.Incidents[0].Item)
	assert.Same(t, stored, report.Incidents[1].Item)
	assert.Equal(t, impact.TrafficModerate, report.TrafficLevel)
}

func TestTrafficScan_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	incidents := mocks.NewMockIncidentService(ctrl)
	service := NewTrafficService(incidents, nil, testLogger(), clockwork.NewFakeClockAt(testNow))

	incidents.EXPECT().NearbyIncidents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	report, err := service.Scan(context.Background(), geo.Coordinate{Lat: 10, Lng: 10}, 1000)

	require.NoError(t, err)
	assert.Empty(t, report.Incidents)
	assert.Equal(t, impact.TrafficLight, report.TrafficLevel)
}

func TestTrafficScan_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	incidents := mocks.NewMockIncidentService(ctrl)
	service := NewTrafficService(incidents, nil, testLogger(), clockwork.NewFakeClockAt(testNow))
	repoErr := errors.New("db down")

	incidents.EXPECT().NearbyIncidents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, repoErr)

	report, err := service.Scan(context.Background(), geo.Coordinate{}, 1000)

	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, repoErr)
}
