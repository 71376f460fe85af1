// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerRecordsColumns holds the columns for the "answer_records" table.
	AnswerRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "selected_option_id", Type: field.TypeInt, Nullable: true},
		{Name: "first_selected_option_id", Type: field.TypeInt, Nullable: true},
		{Name: "time_spent_seconds", Type: field.TypeInt, Default: 0},
		{Name: "selection_change_count", Type: field.TypeInt, Default: 0},
		{Name: "hover_count", Type: field.TypeInt, Default: 0},
		{Name: "eliminated_option_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "correct", Type: field.TypeBool, Default: false},
		{Name: "classification", Type: field.TypeEnum, Enums: []string{"BLIND_GUESS", "EDUCATED_GUESS", "SURE", "UNKNOWN"}, Default: "UNKNOWN"},
		{Name: "answered_at", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeInt},
		{Name: "question_id", Type: field.TypeInt},
	}
	// AnswerRecordsTable holds the schema information for the "answer_records" table.
	AnswerRecordsTable = &schema.Table{
		Name:       "answer_records",
		Columns:    AnswerRecordsColumns,
		PrimaryKey: []*schema.Column{AnswerRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "answer_records_attempts_answers",
				Columns:    []*schema.Column{AnswerRecordsColumns[11]},
				RefColumns: []*schema.Column{AttemptsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "answer_records_questions_answers",
				Columns:    []*schema.Column{AnswerRecordsColumns[12]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "answerrecord_attempt_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{AnswerRecordsColumns[11], AnswerRecordsColumns[12]},
			},
			{
				Name:    "answerrecord_user_id_question_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerRecordsColumns[1], AnswerRecordsColumns[12]},
			},
		},
	}
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "public_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"IN_PROGRESS", "COMPLETED", "ABANDONED"}, Default: "IN_PROGRESS"},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "total_marks", Type: field.TypeInt},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "test_id", Type: field.TypeInt},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "attempts_tests_attempts",
				Columns:    []*schema.Column{AttemptsColumns[8]},
				RefColumns: []*schema.Column{TestsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_user_id_test_id",
				Unique:  true,
				Columns: []*schema.Column{AttemptsColumns[2], AttemptsColumns[8]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'IN_PROGRESS'",
				},
			},
			{
				Name:    "attempt_user_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[2], AttemptsColumns[6]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
		},
	}
	// MetricsRecordsColumns holds the columns for the "metrics_records" table.
	MetricsRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "accuracy", Type: field.TypeFloat64},
		{Name: "attempt_ratio", Type: field.TypeFloat64},
		{Name: "negative_marks", Type: field.TypeFloat64},
		{Name: "first_instinct_accuracy", Type: field.TypeFloat64},
		{Name: "elimination_efficiency", Type: field.TypeFloat64},
		{Name: "impulsive_error_count", Type: field.TypeInt},
		{Name: "overthinking_error_count", Type: field.TypeInt},
		{Name: "guess_probability", Type: field.TypeFloat64},
		{Name: "cognitive_breakdown", Type: field.TypeJSON},
		{Name: "fatigue_curve", Type: field.TypeJSON},
		{Name: "risk_appetite", Type: field.TypeFloat64},
		{Name: "confidence_index", Type: field.TypeFloat64},
		{Name: "consistency_index", Type: field.TypeFloat64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeInt, Unique: true},
	}
	// MetricsRecordsTable holds the schema information for the "metrics_records" table.
	MetricsRecordsTable = &schema.Table{
		Name:       "metrics_records",
		Columns:    MetricsRecordsColumns,
		PrimaryKey: []*schema.Column{MetricsRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "metrics_records_attempts_metrics",
				Columns:    []*schema.Column{MetricsRecordsColumns[16]},
				RefColumns: []*schema.Column{AttemptsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "question_type", Type: field.TypeEnum, Enums: []string{"MCQ", "SUBJECTIVE", "TRUE_FALSE"}},
		{Name: "difficulty", Type: field.TypeEnum, Enums: []string{"EASY", "MEDIUM", "HARD"}},
		{Name: "explanation", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"PYQ", "AI", "USER"}},
		{Name: "verified", Type: field.TypeBool, Default: false},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "fingerprint", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "subject_id", Type: field.TypeInt},
		{Name: "topic_id", Type: field.TypeInt, Nullable: true},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "questions_subjects_questions",
				Columns:    []*schema.Column{QuestionsColumns[11]},
				RefColumns: []*schema.Column{SubjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "questions_topics_questions",
				Columns:    []*schema.Column{QuestionsColumns[12]},
				RefColumns: []*schema.Column{TopicsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "question_difficulty_source_active",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[3], QuestionsColumns[5], QuestionsColumns[7]},
			},
		},
	}
	// QuestionOptionsColumns holds the columns for the "question_options" table.
	QuestionOptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "correct", Type: field.TypeBool, Default: false},
		{Name: "ord", Type: field.TypeInt},
		{Name: "question_id", Type: field.TypeInt},
	}
	// QuestionOptionsTable holds the schema information for the "question_options" table.
	QuestionOptionsTable = &schema.Table{
		Name:       "question_options",
		Columns:    QuestionOptionsColumns,
		PrimaryKey: []*schema.Column{QuestionOptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "question_options_questions_options",
				Columns:    []*schema.Column{QuestionOptionsColumns[4]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// SubjectsColumns holds the columns for the "subjects" table.
	SubjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
	}
	// SubjectsTable holds the schema information for the "subjects" table.
	SubjectsTable = &schema.Table{
		Name:       "subjects",
		Columns:    SubjectsColumns,
		PrimaryKey: []*schema.Column{SubjectsColumns[0]},
	}
	// TestsColumns holds the columns for the "tests" table.
	TestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "public_id", Type: field.TypeString, Unique: true},
		{Name: "target_difficulty", Type: field.TypeEnum, Enums: []string{"EASY", "MEDIUM", "HARD"}},
		{Name: "test_type", Type: field.TypeEnum, Enums: []string{"MOCK", "PRACTICE", "PREVIOUS_YEAR", "AI_GENERATED"}},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "total_marks", Type: field.TypeInt},
		{Name: "duration_minutes", Type: field.TypeInt},
		{Name: "question_ids", Type: field.TypeJSON},
		{Name: "created_by", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "subject_id", Type: field.TypeInt},
		{Name: "topic_id", Type: field.TypeInt, Nullable: true},
	}
	// TestsTable holds the schema information for the "tests" table.
	TestsTable = &schema.Table{
		Name:       "tests",
		Columns:    TestsColumns,
		PrimaryKey: []*schema.Column{TestsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tests_subjects_subject",
				Columns:    []*schema.Column{TestsColumns[10]},
				RefColumns: []*schema.Column{SubjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "tests_topics_topic",
				Columns:    []*schema.Column{TestsColumns[11]},
				RefColumns: []*schema.Column{TopicsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// TopicsColumns holds the columns for the "topics" table.
	TopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeInt},
	}
	// TopicsTable holds the schema information for the "topics" table.
	TopicsTable = &schema.Table{
		Name:       "topics",
		Columns:    TopicsColumns,
		PrimaryKey: []*schema.Column{TopicsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "topics_subjects_topics",
				Columns:    []*schema.Column{TopicsColumns[2]},
				RefColumns: []*schema.Column{SubjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "topic_name_subject_id",
				Unique:  true,
				Columns: []*schema.Column{TopicsColumns[1], TopicsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerRecordsTable,
		AttemptsTable,
		LlmRequestEventsTable,
		MetricsRecordsTable,
		QuestionsTable,
		QuestionOptionsTable,
		SubjectsTable,
		TestsTable,
		TopicsTable,
	}
)

func init() {
	AnswerRecordsTable.ForeignKeys[0].RefTable = AttemptsTable
	AnswerRecordsTable.ForeignKeys[1].RefTable = QuestionsTable
	AttemptsTable.ForeignKeys[0].RefTable = TestsTable
	MetricsRecordsTable.ForeignKeys[0].RefTable = AttemptsTable
	QuestionsTable.ForeignKeys[0].RefTable = SubjectsTable
	QuestionsTable.ForeignKeys[1].RefTable = TopicsTable
	QuestionOptionsTable.ForeignKeys[0].RefTable = QuestionsTable
	TestsTable.ForeignKeys[0].RefTable = SubjectsTable
	TestsTable.ForeignKeys[1].RefTable = TopicsTable
	TopicsTable.ForeignKeys[0].RefTable = SubjectsTable
}
