package consts

const (
	CustomerReportKey         = "customer:report:"
	CustomerMetricsHistoryKey = "customer:metrics:history:"
)
