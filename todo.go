/*
	Project: MindCanvas Teacher Actions
	Planning, assessment and analytics endpoints used by MindCanvas.
*/
package mindcanvas

/*
TODO: exitticket: honor num_groups and return_exemplars_per_group once a real Grouper exists
TODO: conference: draft invites in the requested language (only English today)
TODO: quiz: difficulty is only echoed in rationales; feed it to the AnswerStrategy
TODO: rubric: FeedbackWriter should quote the selected level descriptors
*/
