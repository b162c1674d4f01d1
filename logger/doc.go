/*

Package logger provides logging functionality to an application rendering
responses by defining the required behavior in [Logger] and providing an
implementation of it with [RenderLogger].

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
An implementation of Logger may be initialized at a certain [LogLevel].

When SENTRY_DSN is available in the environment, [New] wraps the constructed
[RenderLogger] in a [SentryLogger] so warnings, errors, and fatal logs ship
to Sentry as well.

*/
package logger
