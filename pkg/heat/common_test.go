package heat_test

import (
	. "calorsos.xyz/heat-alert-service/pkg/heat"
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"go.uber.org/mock/gomock"

	"calorsos.xyz/heat-alert-service/pkg/db"
	"calorsos.xyz/heat-alert-service/pkg/heat/mocks"
)

func GetMockHeatWithMemorySqliteDialector(t *testing.T, useMockIAlert, useMockINotify, useMockIReport bool) (
	*gomock.Controller,
	*Heat,
	*mocks.MockIAlert,
	*mocks.MockINotify,
	*mocks.MockIReport,
) {
	ctrl := gomock.NewController(t)

	mockIAlert := mocks.NewMockIAlert(ctrl)
	mockINotify := mocks.NewMockINotify(ctrl)
	mockIReport := mocks.NewMockIReport(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	heatInstance := (&Heat{Db: *dbInstance})

	alertService := heatInstance.GetIAlert()
	if useMockIAlert {
		alertService = mockIAlert
	}

	notifyService := heatInstance.GetINotify()
	if useMockINotify {
		notifyService = mockINotify
	}

	reportService := heatInstance.GetIReport()
	if useMockIReport {
		reportService = mockIReport
	}

	heatInstance.WithServices(ServiceOpts{
		Alert:  alertService,
		Notify: notifyService,
		Report: reportService,
		Place:  heatInstance.GetIPlace(),
	})

	return ctrl, heatInstance, mockIAlert, mockINotify, mockIReport
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
